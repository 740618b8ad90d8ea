package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/application/service"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/dto/request"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == entity.RoleAdmin
}

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string, returning nil for an empty string
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseMetalType maps the request string onto the metal enum. An empty
// string defaults to gold.
func parseMetalType(s string) enum.MetalType {
	if s == "Silver" {
		return enum.MetalTypeSilver
	}
	return enum.MetalTypeGold
}

// toGivenInputs converts request given lines into service inputs
func toGivenInputs(items []request.GivenItemRequest) ([]service.GivenItemInput, error) {
	inputs := make([]service.GivenItemInput, len(items))
	for i, item := range items {
		itemDate, err := parseDatePtr(item.ItemDate)
		if err != nil {
			return nil, err
		}
		inputs[i] = service.GivenItemInput{
			ItemName:     item.ItemName,
			Tag:          item.Tag,
			GrossWt:      item.GrossWt,
			StoneWt:      item.StoneWt,
			MeltingTouch: item.MeltingTouch,
			StoneAmt:     item.StoneAmt,
			ItemDate:     itemDate,
		}
	}
	return inputs, nil
}

// toReceivedInputs converts request received lines into service inputs
func toReceivedInputs(items []request.ReceivedItemRequest) ([]service.ReceivedItemInput, error) {
	inputs := make([]service.ReceivedItemInput, len(items))
	for i, item := range items {
		itemDate, err := parseDatePtr(item.ItemDate)
		if err != nil {
			return nil, err
		}
		inputs[i] = service.ReceivedItemInput{
			ReceivedGold: item.ReceivedGold,
			Melting:      item.Melting,
			ItemDate:     itemDate,
		}
	}
	return inputs, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return parseDate(*s)
}
