// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enums are stored as their string form so the read-side SQL can filter on
// the same values the API exchanges. The timeline and delivered file lists
// live in JSONB columns; they are always read and written whole.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID               uuid.UUID       `gorm:"type:uuid;index"`
	Plan                  string          `gorm:"type:varchar(16)"`
	Price                 decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status                string          `gorm:"type:varchar(16);index"`
	PaymentStatus         string          `gorm:"type:varchar(16)"`
	PaymentIntentRef      string
	PaymentMethod         string          `gorm:"type:varchar(16)"`
	Requirements          RequirementsDTO `gorm:"embedded;embeddedPrefix:requirements_"`
	Progress              int
	Timeline              TimelineJSON       `gorm:"type:jsonb"`
	EstimatedDeliveryDate time.Time          `gorm:"index"`
	AdminNotes            string             `gorm:"type:text"`
	DeliveredFiles        DeliveredFilesJSON `gorm:"type:jsonb"`
	CreatedAt             time.Time          `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RequirementsDTO represents the embedded build requirements within the
// order table. The website name gets its own column so listings and the
// admin search can reach it without unpacking JSON.
type RequirementsDTO struct {
	WebsiteName     string `gorm:"type:varchar(255)"`
	Description     string `gorm:"type:text"`
	RequiredPages   string `gorm:"type:text"`
	PreferredColors string `gorm:"type:text"`
	References      string `gorm:"type:text"`
	ContactName     string `gorm:"type:varchar(255)"`
	ContactEmail    string `gorm:"type:varchar(255)"`
	ContactPhone    string `gorm:"type:varchar(64)"`
}

// TimelineEventJSON is the JSONB shape of one timeline entry.
type TimelineEventJSON struct {
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// TimelineJSON stores an order's status history as a JSONB array.
type TimelineJSON []TimelineEventJSON

// Value implements driver.Valuer for JSONB serialization.
func (t TimelineJSON) Value() (driver.Value, error) {
	if t == nil {
		t = TimelineJSON{}
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (t *TimelineJSON) Scan(value any) error {
	if value == nil {
		*t = TimelineJSON{}
		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected timeline column type %T", value)
	}

	return json.Unmarshal(data, t)
}

// DeliveredFileJSON is the JSONB shape of one delivered file.
type DeliveredFileJSON struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	FileType    string    `json:"fileType"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// DeliveredFilesJSON stores an order's build artifacts as a JSONB array.
type DeliveredFilesJSON []DeliveredFileJSON

// Value implements driver.Valuer for JSONB serialization.
func (f DeliveredFilesJSON) Value() (driver.Value, error) {
	if f == nil {
		f = DeliveredFilesJSON{}
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (f *DeliveredFilesJSON) Scan(value any) error {
	if value == nil {
		*f = DeliveredFilesJSON{}
		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected delivered files column type %T", value)
	}

	return json.Unmarshal(data, f)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	reqs := aggregate.Requirements()
	contact := reqs.ContactInfo()

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		Plan:             aggregate.Plan().String(),
		Price:            aggregate.Price(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		PaymentIntentRef: aggregate.PaymentIntentRef(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		Requirements: RequirementsDTO{
			WebsiteName:     reqs.WebsiteName(),
			Description:     reqs.Description(),
			RequiredPages:   reqs.RequiredPages(),
			PreferredColors: reqs.PreferredColors(),
			References:      reqs.References(),
			ContactName:     contact.Name,
			ContactEmail:    contact.Email,
			ContactPhone:    contact.Phone,
		},
		Progress: aggregate.Progress(),
		Timeline: lo.Map(aggregate.Timeline(), func(event order.TimelineEvent, _ int) TimelineEventJSON {
			return TimelineEventJSON{
				Status:  event.Status().String(),
				Date:    event.Date(),
				Message: event.Message(),
			}
		}),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		AdminNotes:            aggregate.AdminNotes(),
		DeliveredFiles: lo.Map(aggregate.DeliveredFiles(), func(file order.DeliveredFile, _ int) DeliveredFileJSON {
			return DeliveredFileJSON{
				Name:        file.Name(),
				URL:         file.URL(),
				FileType:    file.FileType().String(),
				Description: file.Description(),
				UploadedAt:  file.UploadedAt(),
			}
		}),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder so invariants are
// re-checked on every read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	plan, err := order.PlanFromString(dto.Plan)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	requirements, err := order.NewRequirements(
		dto.Requirements.WebsiteName,
		dto.Requirements.Description,
		dto.Requirements.RequiredPages,
		dto.Requirements.PreferredColors,
		dto.Requirements.References,
		order.ContactInfo{
			Name:  dto.Requirements.ContactName,
			Email: dto.Requirements.ContactEmail,
			Phone: dto.Requirements.ContactPhone,
		},
	)
	if err != nil {
		return nil, err
	}

	timeline := make([]order.TimelineEvent, 0, len(dto.Timeline))
	for _, record := range dto.Timeline {
		eventStatus, statusErr := order.StatusFromString(record.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		event, eventErr := order.NewTimelineEvent(eventStatus, record.Date, record.Message)
		if eventErr != nil {
			return nil, eventErr
		}

		timeline = append(timeline, event)
	}

	files := make([]order.DeliveredFile, 0, len(dto.DeliveredFiles))
	for _, record := range dto.DeliveredFiles {
		fileType, typeErr := order.FileTypeFromString(record.FileType)
		if typeErr != nil {
			return nil, typeErr
		}

		file, fileErr := order.NewDeliveredFile(record.Name, record.URL, fileType, record.Description, record.UploadedAt)
		if fileErr != nil {
			return nil, fileErr
		}

		files = append(files, file)
	}

	return order.RestoreOrder(
		id,
		ownerID,
		plan,
		dto.Price,
		status,
		paymentStatus,
		dto.PaymentIntentRef,
		paymentMethod,
		requirements,
		dto.Progress,
		timeline,
		dto.EstimatedDeliveryDate,
		dto.AdminNotes,
		files,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
