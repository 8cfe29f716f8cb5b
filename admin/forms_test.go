package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitara.io/store/models/enum"
)

func TestProductFormValidate(t *testing.T) {
	valid := ProductForm{
		Name:       "ستارة معتمة",
		CategoryID: 3,
		Price:      "150.00",
		Stock:      5,
		Status:     enum.ProductStatusAvailable,
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("short name", func(t *testing.T) {
		f := valid
		f.Name = " س "
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("name")
		assert.True(t, ok)
	})

	t.Run("missing category", func(t *testing.T) {
		f := valid
		f.CategoryID = 0
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("category_id")
		assert.True(t, ok)
	})

	t.Run("missing price", func(t *testing.T) {
		f := valid
		f.Price = "  "
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("price")
		assert.True(t, ok)
	})

	t.Run("negative stock", func(t *testing.T) {
		f := valid
		f.Stock = -1
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("stock")
		assert.True(t, ok)
	})

	t.Run("zero stock is fine", func(t *testing.T) {
		f := valid
		f.Stock = 0
		assert.Nil(t, f.Validate())
	})

	t.Run("empty form reports every field", func(t *testing.T) {
		verr := (&ProductForm{}).Validate()
		require.NotNil(t, verr)
		assert.Len(t, verr.Fields, 4)
	})
}

func TestCategoryFormValidate(t *testing.T) {
	assert.Nil(t, (&CategoryForm{Name: "ستائر"}).Validate())

	verr := (&CategoryForm{Name: "س"}).Validate()
	require.NotNil(t, verr)
	_, ok := verr.FieldError("name")
	assert.True(t, ok)
}

func TestSettingsFormValidate(t *testing.T) {
	valid := SettingsForm{SiteName: "أظلال", Email: "info@adhlal.sa"}
	assert.Nil(t, valid.Validate())

	t.Run("bad email", func(t *testing.T) {
		f := valid
		f.Email = "not-an-email"
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("email")
		assert.True(t, ok)
	})

	t.Run("missing site name", func(t *testing.T) {
		f := valid
		f.SiteName = ""
		verr := f.Validate()
		require.NotNil(t, verr)
		_, ok := verr.FieldError("site_name")
		assert.True(t, ok)
	})
}
