package service

import (
	"context"
	"errors"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"

	"gorm.io/gorm"
)

var ErrHashPassword = errors.New("failed to hash password")

type CreateUserRequest struct {
	Username    string            `json:"username" validate:"required,max=100"`
	Fullname    string            `json:"fullname" validate:"required,max=255"`
	Designation model.Designation `json:"designation" validate:"required,enum"`
	Contact     string            `json:"contact" validate:"max=50"`
	AccountType model.AccountType `json:"account_type" validate:"required,enum"`
	Password    string            `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest changes only the fields that are set.
type UpdateUserRequest struct {
	Username    *string            `json:"username" validate:"omitempty,min=1,max=100"`
	Fullname    *string            `json:"fullname" validate:"omitempty,min=1,max=255"`
	Designation *model.Designation `json:"designation" validate:"omitempty,enum"`
	Contact     *string            `json:"contact" validate:"omitempty,max=50"`
	AccountType *model.AccountType `json:"account_type" validate:"omitempty,enum"`
	Password    *string            `json:"password" validate:"omitempty,min=6"`
}

type UserService = Accessor[model.User, CreateUserRequest, UpdateUserRequest]

type userService struct {
	resource
}

func NewUserService(deps Deps) UserService {
	return &userService{newResource(deps, "user", "User")}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.User, error) {
		return r.Users.FindAll(ctx)
	})
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.User, error) {
		return r.Users.FindByID(ctx, id)
	})
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if err := s.validate(req); err != nil {
		return nil, err
	}

	// 2. Hash password
	user := &model.User{
		Username:    req.Username,
		Fullname:    req.Fullname,
		Designation: req.Designation,
		Contact:     req.Contact,
		AccountType: req.AccountType,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, s.fail(ErrHashPassword)
	}

	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.User, error) {
		// 3. Check username is free
		if err := Check(ctx, r.Lookup, Unique("username", model.TableUser, "username", req.Username)); err != nil {
			return nil, err
		}

		// 4. Save to database
		if err := r.Users.Create(ctx, user); err != nil {
			return nil, classifyWrite(err, "username", req.Username)
		}
		return reread(r.Users.FindByID(ctx, user.UserID))
	})
}

func (s *userService) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*model.User, error) {
	// 1. Validate request
	if err := s.validate(req); err != nil {
		return nil, err
	}

	// 2. Collect the supplied fields
	columns := map[string]interface{}{}
	if req.Username != nil {
		columns["username"] = *req.Username
	}
	if req.Fullname != nil {
		columns["fullname"] = *req.Fullname
	}
	if req.Designation != nil {
		columns["designation"] = *req.Designation
	}
	if req.Contact != nil {
		columns["contact"] = *req.Contact
	}
	if req.AccountType != nil {
		columns["account_type"] = *req.AccountType
	}
	if req.Password != nil {
		var hashed model.User
		if err := hashed.SetPassword(*req.Password); err != nil {
			return nil, s.fail(ErrHashPassword)
		}
		columns["password"] = hashed.Password
	}
	if len(columns) == 0 {
		return nil, s.fail(ErrNoFieldsToUpdate)
	}

	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.User, error) {
		// 3. Find existing user
		existing, err := r.Users.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}

		// 4. Check if username is being changed and already exists
		if req.Username != nil && *req.Username != existing.Username {
			if err := Check(ctx, r.Lookup, Unique("username", model.TableUser, "username", *req.Username)); err != nil {
				return nil, err
			}
		}

		// 5. Write the changed columns
		if err := r.Users.UpdateColumns(ctx, id, columns); err != nil {
			return nil, classifyWrite(err, "username", columns["username"])
		}
		return reread(r.Users.FindByID(ctx, id))
	})
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Users.Delete(ctx, id)
	})
}

// ResetPassword stores a new bcrypt hash for the user with the given
// username.
func ResetPassword(ctx context.Context, store repository.Store, username, password string) error {
	if len(password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	var hashed model.User
	if err := hashed.SetPassword(password); err != nil {
		return ErrHashPassword
	}
	return store.Session(ctx, func(r *repository.Repositories) error {
		user, err := r.Users.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "User " + username}
			}
			return storeFault(err)
		}
		return storeFault(r.Users.UpdatePassword(ctx, user.UserID, hashed.Password))
	})
}
