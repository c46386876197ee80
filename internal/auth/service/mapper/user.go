package mapper

import (
	authdto "github.com/tomo-auth/backend/internal/auth/service/dto"
	userdomain "github.com/tomo-auth/backend/internal/user/domain"
)

func UserToPublic(user userdomain.User) authdto.PublicUser {
	return authdto.PublicUser{
		ID:        string(user.ID),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
