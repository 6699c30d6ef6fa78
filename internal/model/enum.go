package model

// Designation is a user's job role.
type Designation int

const (
	DesignationStaff   Designation = 1
	DesignationManager Designation = 2
	DesignationAdmin   Designation = 3
)

func (d Designation) Valid() bool {
	return d >= DesignationStaff && d <= DesignationAdmin
}

func (d Designation) String() string {
	switch d {
	case DesignationStaff:
		return "STAFF"
	case DesignationManager:
		return "MANAGER"
	case DesignationAdmin:
		return "ADMIN"
	}
	return "UNKNOWN"
}

// AccountType is a user's access tier.
type AccountType int

const (
	AccountRegular    AccountType = 1
	AccountAdmin      AccountType = 2
	AccountSuperAdmin AccountType = 3
)

func (a AccountType) Valid() bool {
	return a >= AccountRegular && a <= AccountSuperAdmin
}

func (a AccountType) String() string {
	switch a {
	case AccountRegular:
		return "REGULAR"
	case AccountAdmin:
		return "ADMIN"
	case AccountSuperAdmin:
		return "SUPER_ADMIN"
	}
	return "UNKNOWN"
}

// PaymentType is how an invoice was settled.
type PaymentType int

const (
	PaymentCash         PaymentType = 1
	PaymentCredit       PaymentType = 2
	PaymentBankTransfer PaymentType = 3
	PaymentMobileMoney  PaymentType = 4
)

func (p PaymentType) Valid() bool {
	return p >= PaymentCash && p <= PaymentMobileMoney
}

func (p PaymentType) String() string {
	switch p {
	case PaymentCash:
		return "CASH"
	case PaymentCredit:
		return "CREDIT"
	case PaymentBankTransfer:
		return "BANK_TRANSFER"
	case PaymentMobileMoney:
		return "MOBILE_MONEY"
	}
	return "UNKNOWN"
}
