package api

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/ashdelaney/platewise/internal/services"
	"github.com/gofiber/fiber/v2"
)

const minPasswordLength = 6

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}

	return credentials, nil
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if len(credentials.Password) < minPasswordLength {
		return "password too short"
	}
	if credentials.Password != credentials.ConfirmPassword {
		return "passwords do not match"
	}
	return ""
}

// parseEntryPayload decodes a submission without judging field values;
// domain clamping happens in services.NormalizeEntryInput.
func parseEntryPayload(c *fiber.Ctx) (services.EntryInput, error) {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.EntryInput{}, err
	}

	return services.EntryInput{
		FoodSource:           payload.FoodSource,
		EatingLocation:       payload.EatingLocation,
		AnxietyLevel:         payload.AnxietyLevel,
		BreathingDifficulty:  payload.BreathingDifficulty,
		SwallowingDifficulty: payload.SwallowingDifficulty,
		ScratchyThroat:       payload.ScratchyThroat,
		StomachPain:          payload.StomachPain,
		ChestPain:            payload.ChestPain,
		Reflux:               payload.Reflux,
		FoodEaten:            payload.FoodEaten,
		Concerns:             payload.Concerns,
		AdditionalComments:   payload.AdditionalComments,
		TookMeds:             payload.TookMeds,
		MedTypes:             payload.MedTypes,
		MedsHelped:           payload.MedsHelped,
	}, nil
}
