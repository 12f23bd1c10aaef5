package service

import (
	"context"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
)

// credentialReader is the slice of a repository that login needs. Both user
// kinds authenticate the same way.
type credentialReader interface {
	GetRoleByCredentials(ctx context.Context, email, password string) (string, error)
	GetIDByCredentials(ctx context.Context, email, password string) (int64, error)
	GetNameByCredentials(ctx context.Context, email, password string) (string, error)
}

// loginWithCredentials runs the three independent credential lookups. The
// result is empty unless both role and id resolved; an empty map means
// "authentication failed", never an error. The full name falls back to a
// placeholder when the other two matched but the name did not.
func loginWithCredentials(ctx context.Context, repo credentialReader, email, password string) (map[string]interface{}, error) {
	response := map[string]interface{}{}

	role, err := repo.GetRoleByCredentials(ctx, email, password)
	if err != nil {
		return nil, domain.NewBusinessError("error during login operation", err)
	}

	id, err := repo.GetIDByCredentials(ctx, email, password)
	if err != nil {
		return nil, domain.NewBusinessError("error during login operation", err)
	}

	fullName, err := repo.GetNameByCredentials(ctx, email, password)
	if err != nil {
		return nil, domain.NewBusinessError("error during login operation", err)
	}

	if role != "" && id != 0 {
		response["role"] = role
		response["id"] = id
		if fullName == "" {
			fullName = "Unknown User"
		}
		response["fullName"] = fullName
	}

	return response, nil
}
