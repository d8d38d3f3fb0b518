package order_test

import (
	"testing"

	"sitebuilder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Strings(t *testing.T) {
	t.Run("should expose lowercase names", func(t *testing.T) {
		cases := map[order.Status]string{
			order.StatusPending:      "pending",
			order.StatusRequirements: "requirements",
			order.StatusDesign:       "design",
			order.StatusDevelopment:  "development",
			order.StatusRevision:     "revision",
			order.StatusCompleted:    "completed",
			order.StatusCancelled:    "cancelled",
		}

		for status, name := range cases {
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("unknown values stringify to unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.StatusUnknown.String())
		assert.Equal(t, "unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		for _, name := range []string{
			"pending", "requirements", "design", "development", "revision", "completed", "cancelled",
		} {
			status, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shipped")
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
	})

	t.Run("out-of-range values are invalid", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_Progress(t *testing.T) {
	t.Run("should derive progress from the fixed table", func(t *testing.T) {
		cases := map[order.Status]int{
			order.StatusPending:      5,
			order.StatusRequirements: 20,
			order.StatusDesign:       40,
			order.StatusDevelopment:  60,
			order.StatusRevision:     80,
			order.StatusCompleted:    100,
		}

		for status, expected := range cases {
			progress, ok := status.Progress()

			assert.True(t, ok, "%s should have a progress entry", status)
			assert.Equal(t, expected, progress)
		}
	})

	t.Run("cancelled has no entry", func(t *testing.T) {
		_, ok := order.StatusCancelled.Progress()

		assert.False(t, ok)
	})
}

func TestStatus_DefaultMessage(t *testing.T) {
	t.Run("should expose default messages", func(t *testing.T) {
		cases := map[order.Status]string{
			order.StatusRequirements: "Gathering requirements",
			order.StatusDesign:       "Design phase started",
			order.StatusDevelopment:  "Development phase started",
			order.StatusRevision:     "Revisions in progress",
			order.StatusCompleted:    "Website completed",
			order.StatusCancelled:    "Order cancelled",
		}

		for status, expected := range cases {
			message, ok := status.DefaultMessage()

			assert.True(t, ok, "%s should have a default message", status)
			assert.Equal(t, expected, message)
		}
	})

	t.Run("pending has no default message", func(t *testing.T) {
		_, ok := order.StatusPending.DefaultMessage()

		assert.False(t, ok)
	})
}

func TestStatus_IsInProgress(t *testing.T) {
	inProgress := []order.Status{
		order.StatusRequirements, order.StatusDesign, order.StatusDevelopment, order.StatusRevision,
	}
	notInProgress := []order.Status{
		order.StatusPending, order.StatusCompleted, order.StatusCancelled, order.StatusUnknown,
	}

	for _, status := range inProgress {
		assert.True(t, status.IsInProgress(), "%s should be in progress", status)
	}
	for _, status := range notInProgress {
		assert.False(t, status.IsInProgress(), "%s should not be in progress", status)
	}
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should round-trip all valid values", func(t *testing.T) {
		for _, name := range []string{"pending", "paid", "failed", "refunded"} {
			status, err := order.PaymentStatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.PaymentStatusFromString("chargeback")

		require.Error(t, err)
	})
}

func TestPaymentMethod(t *testing.T) {
	t.Run("should round-trip all valid values", func(t *testing.T) {
		for _, name := range []string{"card", "paypal", "bank_transfer", "other"} {
			method, err := order.PaymentMethodFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, method.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("crypto")

		require.Error(t, err)
	})
}

func TestPlan(t *testing.T) {
	t.Run("should price each tier from the fixed table", func(t *testing.T) {
		cases := map[string]int64{
			"starter": 150,
			"growth":  499,
			"elite":   999,
		}

		for name, price := range cases {
			plan, err := order.PlanFromString(name)

			require.NoError(t, err)
			assert.True(t, plan.Price().Equal(decimal.NewFromInt(price)))
		}
	})

	t.Run("should reject unknown plan", func(t *testing.T) {
		_, err := order.PlanFromString("enterprise")

		require.Error(t, err)
	})

	t.Run("unknown plan prices to zero", func(t *testing.T) {
		assert.True(t, order.PlanUnknown.Price().IsZero())
	})
}

func TestFileType(t *testing.T) {
	t.Run("should round-trip all valid values", func(t *testing.T) {
		for _, name := range []string{"design", "code", "image", "document", "other"} {
			ft, err := order.FileTypeFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, ft.String())
		}
	})

	t.Run("empty input defaults to other", func(t *testing.T) {
		ft, err := order.FileTypeFromString("")

		require.NoError(t, err)
		assert.Equal(t, order.FileTypeOther, ft)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.FileTypeFromString("video")

		require.Error(t, err)
	})
}
