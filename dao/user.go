package dao

import (
	"errors"

	"serene-backend/model"

	"gorm.io/gorm"
)

func CreateUser(user *model.User) error {
	return DB.Create(user).Error
}

func GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := DB.Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUsersByEmails 批量查询用户档案，返回email到用户的映射
func GetUsersByEmails(emails []string) (map[string]model.User, error) {
	if len(emails) == 0 {
		return map[string]model.User{}, nil
	}

	var users []model.User
	if err := DB.Where("email IN ?", emails).
		Find(&users).Error; err != nil {
		return nil, err
	}

	byEmail := make(map[string]model.User, len(users))
	for _, user := range users {
		byEmail[user.Email] = user
	}
	return byEmail, nil
}
