package service

import (
	"context"
	"errors"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Accessor is the CRUD surface of one resource. V is the response row, C the
// create payload and U the update payload.
type Accessor[V, C, U any] interface {
	List(ctx context.Context) ([]V, error)
	Get(ctx context.Context, id int64) (*V, error)
	Create(ctx context.Context, req *C) (*V, error)
	Update(ctx context.Context, id int64, req *U) (*V, error)
	Delete(ctx context.Context, id int64) error
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Notifier receives successful mutations. Publish must not block.
type Notifier interface {
	Publish(resource, action string, id int64)
}

type discard struct{}

func (discard) Publish(string, string, int64) {}

// Deps is what every accessor needs.
type Deps struct {
	Store    repository.Store
	Notifier Notifier
	Logger   *zap.Logger
}

// resource carries the plumbing shared by the accessors.
type resource struct {
	name   string
	label  string
	store  repository.Store
	events Notifier
	log    *zap.Logger
}

func newResource(deps Deps, name, label string) resource {
	events := deps.Notifier
	if events == nil {
		events = discard{}
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return resource{
		name:   name,
		label:  label,
		store:  deps.Store,
		events: events,
		log:    log.With(zap.String("resource", name)),
	}
}

// session runs fn on a scoped connection. Errors that are not already part of
// the taxonomy, such as a failed connection checkout, become StoreFaults.
func (r resource) session(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	err := r.store.Session(ctx, fn)
	var notFound *NotFoundError
	if err != nil && !errors.As(err, &notFound) && rejectionReason(err) == "other" {
		err = storeFault(err)
	}
	return r.fail(err)
}

// found converts a lookup error on id into the caller-facing error.
func (r resource) found(err error, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: r.label, ID: id}
	}
	return storeFault(err)
}

// deleted turns the outcome of a delete into the caller-facing error.
func (r resource) deleted(removed bool, err error, id int64) error {
	if err != nil {
		return storeFault(err)
	}
	if !removed {
		return &NotFoundError{Resource: r.label, ID: id}
	}
	return nil
}

// fail logs err at a level matching its kind and returns it unchanged.
func (r resource) fail(err error) error {
	if err == nil {
		return nil
	}
	var (
		fault    *StoreFault
		notFound *NotFoundError
	)
	switch {
	case errors.As(err, &fault):
		r.log.Error("store operation failed", zap.Error(err))
		metrics.RecordRejection(r.name, "store_fault")
	case errors.As(err, &notFound):
		r.log.Debug("row not found", zap.Int64("id", notFound.ID))
	default:
		r.log.Warn("request rejected", zap.Error(err))
		metrics.RecordRejection(r.name, rejectionReason(err))
	}
	return err
}

func (r resource) changed(action string, id int64) {
	r.log.Info("resource "+action, zap.Int64("id", id))
	metrics.RecordResourceOperation(r.name, action)
	r.events.Publish(r.name, action, id)
}

func rejectionReason(err error) string {
	var (
		conflict   *ConflictError
		reference  *ReferenceError
		validation *ValidationError
		badRequest *BadRequestError
	)
	switch {
	case errors.As(err, &conflict):
		return "conflict"
	case errors.As(err, &reference):
		return "reference"
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &badRequest):
		return "bad_request"
	}
	return "other"
}

type keyed interface {
	Key() int64
}

func list[V any](ctx context.Context, res resource, fn func(repos *repository.Repositories) ([]V, error)) ([]V, error) {
	var rows []V
	err := res.session(ctx, func(repos *repository.Repositories) error {
		var err error
		rows, err = fn(repos)
		return storeFault(err)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func get[V any](ctx context.Context, res resource, id int64, fn func(repos *repository.Repositories) (*V, error)) (*V, error) {
	var row *V
	err := res.session(ctx, func(repos *repository.Repositories) error {
		var err error
		row, err = fn(repos)
		return res.found(err, id)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// mutate runs a create or update in one session and announces the result.
func mutate[V keyed](ctx context.Context, res resource, action string, fn func(repos *repository.Repositories) (*V, error)) (*V, error) {
	var row *V
	err := res.session(ctx, func(repos *repository.Repositories) error {
		var err error
		row, err = fn(repos)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.changed(action, (*row).Key())
	return row, nil
}

func remove(ctx context.Context, res resource, id int64, fn func(repos *repository.Repositories) (bool, error)) error {
	err := res.session(ctx, func(repos *repository.Repositories) error {
		removed, err := fn(repos)
		return res.deleted(removed, err, id)
	})
	if err != nil {
		return err
	}
	res.changed(ActionDeleted, id)
	return nil
}

// reread wraps the lookup that follows a write. A missing row at that point
// is a store fault, not a client error.
func reread[V any](row *V, err error) (*V, error) {
	if err != nil {
		return nil, storeFault(err)
	}
	return row, nil
}

func (r resource) validate(req interface{}) error {
	return r.fail(validateRequest(req))
}
