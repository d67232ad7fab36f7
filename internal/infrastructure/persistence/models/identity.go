package models

import (
	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for the User domain entity
type UserModel struct {
	BaseModel
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	IsVerified   bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "fm_user"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		IsVerified:   m.IsVerified,
		IsActive:     m.IsActive,
	}
}

// UserModelFromDomain builds a persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsVerified:   u.IsVerified,
		IsActive:     u.IsActive,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// AuthSessionModel is the persistence model for issued token pairs.
// One row per user and client IP.
type AuthSessionModel struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_auth_session_user_ip"`
	IPAddress    string    `gorm:"type:varchar(45);not null;uniqueIndex:idx_auth_session_user_ip"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (AuthSessionModel) TableName() string {
	return "fm_auth_session"
}

// ToDomain converts the persistence model to a domain AuthSession
func (m *AuthSessionModel) ToDomain() *identity.AuthSession {
	return &identity.AuthSession{
		BaseEntity:   m.BaseModel.ToDomain(),
		UserID:       m.UserID,
		IPAddress:    m.IPAddress,
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
	}
}

// AuthSessionModelFromDomain builds a persistence model from a domain AuthSession
func AuthSessionModelFromDomain(s *identity.AuthSession) *AuthSessionModel {
	m := &AuthSessionModel{
		UserID:       s.UserID,
		IPAddress:    s.IPAddress,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// AddressModel is the persistence model for shipping addresses
type AddressModel struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Street    string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	StateID   uuid.UUID `gorm:"type:uuid;not null"`
	CountryID uuid.UUID `gorm:"type:uuid;not null"`
	Zipcode   string    `gorm:"type:varchar(20)"`
	Phones    string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "fm_address"
}

// ToDomain converts the persistence model to a domain Address
func (m *AddressModel) ToDomain() *identity.Address {
	return &identity.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Street:     m.Street,
		City:       m.City,
		StateID:    m.StateID,
		CountryID:  m.CountryID,
		Zipcode:    m.Zipcode,
		Phones:     m.Phones,
	}
}

// AddressModelFromDomain builds a persistence model from a domain Address
func AddressModelFromDomain(a *identity.Address) *AddressModel {
	m := &AddressModel{
		UserID:    a.UserID,
		Street:    a.Street,
		City:      a.City,
		StateID:   a.StateID,
		CountryID: a.CountryID,
		Zipcode:   a.Zipcode,
		Phones:    a.Phones,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
