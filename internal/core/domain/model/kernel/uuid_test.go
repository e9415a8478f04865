package kernel_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-zero UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should give every order its own identity", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.NotEqual(t, first.String(), second.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "415be95d-8865-478c-a483-a22b648a1702"

	t.Run("should parse an identity header value", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should normalize alternate spellings to canonical form", func(t *testing.T) {
		for _, input := range []string{
			"{415be95d-8865-478c-a483-a22b648a1702}",
			"urn:uuid:415be95d-8865-478c-a483-a22b648a1702",
			"415be95d8865478ca483a22b648a1702",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"RCP-415be95d-1756600000000-9f8a2c1b",
			"415be95d-8865-478c-a483",
			"415be95d-8865-478c-a483-a22b648a1702-extra",
			"zz5be95d-8865-478c-a483-a22b648a1702",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should restore the UUID a column value round-trips", func(t *testing.T) {
		original := kernel.NewUUID()
		column := original.Bytes()

		restored, err := kernel.UUIDFromBytes(column[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject a truncated column value", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x41, 0x5b, 0xe9})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject sixteen zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("should render the canonical hyphenated form", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should be stable enough to derive receipt prefixes from", func(t *testing.T) {
		id, err := kernel.UUIDFromString("415be95d-8865-478c-a483-a22b648a1702")
		require.NoError(t, err)

		prefix := strings.ReplaceAll(id.String(), "-", "")[:8]

		assert.Equal(t, "415be95d", prefix)
		assert.Equal(t, id.String(), id.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the library value the adapters persist", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("should hand out a copy the caller cannot mutate through", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match two parses of the same identity", func(t *testing.T) {
		requester, _ := kernel.UUIDFromString("415be95d-8865-478c-a483-a22b648a1702")
		customer, _ := kernel.UUIDFromString("415be95d-8865-478c-a483-a22b648a1702")

		assert.True(t, requester.IsEqual(customer))
		assert.True(t, customer.IsEqual(requester))
	})

	t.Run("should distinguish different identities", func(t *testing.T) {
		owner := kernel.NewUUID()
		stranger := kernel.NewUUID()

		assert.False(t, owner.IsEqual(stranger))
	})

	t.Run("should treat two zero values as equal", func(t *testing.T) {
		var a, b kernel.UUID

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept any constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should reject the all-zeros string form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should surface a forgotten identifier field", func(t *testing.T) {
		var ref struct {
			OrderID kernel.UUID
		}

		assert.Error(t, ref.OrderID.Validate())
	})
}
