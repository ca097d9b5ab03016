package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dealer-api/internal/domain"
)

func TestOptional_DistinguishesAbsentFromNull(t *testing.T) {
	var req UpdateCarRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":null,"observations":"one owner"}`), &req))

	assert.True(t, req.Price.Set)
	assert.Nil(t, req.Price.Value)
	assert.True(t, req.Observations.Set)
	assert.Equal(t, "one owner", *req.Observations.Value)
	assert.False(t, req.PhotoURL.Set)
}

func TestUpdateCarRequest_ApplyTo(t *testing.T) {
	price := 98500.0
	photo := "https://cdn.example.com/civic.jpg"
	car := &domain.Car{Title: "Civic", Price: &price, PhotoURL: &photo}

	var req UpdateCarRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":null,"observations":"one owner"}`), &req))
	req.ApplyTo(car)

	assert.Nil(t, car.Price)
	assert.Equal(t, &photo, car.PhotoURL)
	require.NotNil(t, car.Observations)
	assert.Equal(t, "one owner", *car.Observations)
	assert.Equal(t, "Civic", car.Title)
}

func TestOptional_MarshalOmitsUnset(t *testing.T) {
	status := "sold"
	body, err := json.Marshal(UpdateCarRequest{Status: &status, Price: OptionalNull[float64]()})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":null,"brand":null,"model":null,"year":null,"price":null,"status":"sold"}`, string(body))
}
