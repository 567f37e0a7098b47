package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"gemtrade/internal/service"
)

// requestTimeout bounds hashing and store calls for a single auth request.
const requestTimeout = 15 * time.Second

// loginRequest is the JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register (multipart/form-data).
// Fields: full_name, email, username, password; optional file id_document.
func Register(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		in := service.RegisterInput{
			FullName: c.FormValue("full_name"),
			Email:    c.FormValue("email"),
			Username: c.FormValue("username"),
			Password: c.FormValue("password"),
		}

		// The verification document is optional; a missing form file is not
		// an error.
		if fh, err := c.FormFile("id_document"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				return writeMessage(c, fiber.StatusBadRequest, "Cannot read uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			in.Document = &service.DocumentUpload{
				Reader:      f,
				Filename:    fh.Filename,
				ContentType: ct,
				Size:        fh.Size,
			}
		}

		userID, err := authSvc.Register(ctx, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFieldsRequired):
				return writeMessage(c, fiber.StatusBadRequest, "All fields are required")
			case errors.Is(err, service.ErrEmailTaken):
				return writeMessage(c, fiber.StatusBadRequest, "Email already registered")
			case errors.Is(err, service.ErrUnsupportedMediaType):
				return writeMessage(c, fiber.StatusBadRequest, "Only images and PDF files are allowed")
			case errors.Is(err, service.ErrDocumentTooLarge):
				return writeMessage(c, fiber.StatusBadRequest, "File exceeds the 5MB limit")
			default:
				return writeMessage(c, fiber.StatusInternalServerError, "Error registering user")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User registered successfully",
			"userId":  userID,
		})
	}
}

// Login handles POST /api/auth/login (JSON).
func Login(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Email and password are required")
		}

		res, err := authSvc.Login(ctx, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFieldsRequired):
				return writeMessage(c, fiber.StatusBadRequest, "Email and password are required")
			case errors.Is(err, service.ErrInvalidCredentials):
				return writeMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
			default:
				return writeMessage(c, fiber.StatusInternalServerError, "Error during login")
			}
		}

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"token":   res.Token,
			"user":    res.User,
		})
	}
}
