package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/apex/log"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleUser,
		Disabled:  false,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// best effort, registration already succeeded
	if err := utils.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
		log.WithError(err).WithField("email", user.Email).Warn("welcome email failed")
	}
	return nil
}

// AuthenticateUser checks credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email, user.Role)
}
