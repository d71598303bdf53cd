// Package userrepo provides data transfer objects and mapping functions for user persistence.
// Users are written by the seeding routine and the identity layer; the core only
// ever reads them, so the repository exposes no write operations.
package userrepo

import (
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// The password hash never leaves the adapter layer: the domain user entity
// carries no credential material.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// ToDomain converts a database DTO to a user domain entity.
func (dto UserDTO) ToDomain() (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Name, dto.Email, role)
}
