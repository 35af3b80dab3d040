package userapp

import (
	"github.com/gofrs/uuid"
	userEntity "yatube/internal/core/user"
)

func testUser() *userEntity.User {
	return &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "someone"}
}
