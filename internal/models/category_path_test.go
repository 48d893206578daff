package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPath_Value(t *testing.T) {
	value, err := CategoryPath{"Food and Drink", "Restaurants"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Food and Drink","Restaurants"]`, value)

	value, err = CategoryPath(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = CategoryPath{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestCategoryPath_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    CategoryPath
		wantErr bool
	}{
		{name: "string", input: `["Service","Subscription"]`, want: CategoryPath{"Service", "Subscription"}},
		{name: "bytes", input: []byte(`["Travel"]`), want: CategoryPath{"Travel"}},
		{name: "nil", input: nil, want: nil},
		{name: "empty string", input: "", want: nil},
		{name: "empty array", input: "[]", want: nil},
		{name: "invalid json", input: "not json", wantErr: true},
		{name: "unsupported type", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := CategoryPath{"stale"}

			err := path.Scan(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}
}

func TestCategoryPath_Leaf(t *testing.T) {
	assert.Equal(t, "Restaurants", CategoryPath{"Food and Drink", "Restaurants"}.Leaf())
	assert.Equal(t, "", CategoryPath(nil).Leaf())
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, IsValidCategory(category), category)
	}
	assert.False(t, IsValidCategory("dining"))
	assert.False(t, IsValidCategory("Restaurants"))
	assert.False(t, IsValidCategory(""))
}
