package model

import "golang.org/x/crypto/bcrypt"

// User is a back-office operator. Password holds a bcrypt hash.
type User struct {
	UserID      int64       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username    string      `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username"`
	Fullname    string      `gorm:"column:fullname;type:varchar(255);not null" json:"fullname"`
	Designation Designation `gorm:"column:designation;not null" json:"designation"`
	Contact     string      `gorm:"column:contact;type:varchar(50)" json:"contact"`
	AccountType AccountType `gorm:"column:account_type;not null" json:"account_type"`
	Password    string      `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string {
	return TableUser
}

func (m User) Key() int64 {
	return m.UserID
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
