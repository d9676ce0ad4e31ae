package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

// CustomerService is the customer directory the loyalty core consumes:
// identity lookup, activity tracking and the cached balance projection.
type CustomerService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewCustomerService(db *gorm.DB, validator *infrastructures.Validator) *CustomerService {
	return &CustomerService{
		db:        db,
		validator: validator,
	}
}

func (s *CustomerService) CreateCustomer(req *models.CustomerCreateRequest) (*models.Customer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FullName:      req.FullName,
		Phone:         req.Phone,
		PointsBalance: 0,
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create customer")
	}

	return customer, nil
}

func (s *CustomerService) GetCustomer(customerId string) (*models.Customer, error) {
	customerUUID, err := uuid.Parse(customerId)
	if err != nil {
		return nil, errors.NewValidationError("Invalid customer ID format")
	}

	var customer models.Customer
	err = s.db.Where("id = ?", customerUUID).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Customer not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get customer")
	}

	return &customer, nil
}

// TouchActivity records that the customer interacted with the program.
func (s *CustomerService) TouchActivity(customerID uuid.UUID) error {
	now := time.Now()
	err := s.db.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("last_activity_at", now).Error
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to update customer activity")
	}
	return nil
}

// SyncBalance writes the freshly computed ledger total into the cached
// balance column. The cache is for display only; the ledger stays
// authoritative.
func (s *CustomerService) SyncBalance(customerID uuid.UUID, balance int64) error {
	err := s.db.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("points_balance", balance).Error
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to sync customer balance")
	}
	return nil
}
