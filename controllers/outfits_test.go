package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecostyleapi/models"
	"ecostyleapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jeansAnalysis = `{"type": "Jeans", "color": "Black", "material": "Denim", "style": "Casual", "season": "All", "sustainability_score": 4}`

const twoOutfits = `Here are some ideas:
[
  {"outfit_name": "Easy Friday", "items": [1, 2], "description": "Relaxed and breathable", "occasion": "Casual Day", "sustainability_score": 7},
  {"outfit_name": "Solo Shirt", "items": ["1"], "description": "Keep it simple", "occasion": "Weekend Outing", "sustainability_score": "6 (mostly cotton)"}
]`

func TestCurrentWeatherDefault(t *testing.T) {
	e, _ := newTestServer(t, &test.MockGenerativeModel{})
	session := test.StartSession(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodGet, "/weather", session.AccessToken))

	require.Equal(t, http.StatusOK, rec.Code)
	var reading models.WeatherReading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reading))
	assert.Equal(t, models.DefaultWeatherReading(), reading)
}

func TestRefreshWeather(t *testing.T) {
	e, _ := newTestServer(t, &test.MockGenerativeModel{})
	session := test.StartSession(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/weather/refresh", session.AccessToken, models.WeatherRefreshIn{Location: "Lisbon"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var response struct {
		Message string                `json:"message"`
		Weather models.WeatherReading `json:"weather"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Weather updated: 72°F, Cloudy", response.Message)
	assert.Equal(t, models.WeatherReading{Temp: 72, Condition: models.ConditionCloudy}, response.Weather)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodGet, "/weather", session.AccessToken))
	var reading models.WeatherReading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reading))
	assert.Equal(t, 72, reading.Temp)
}

func TestRefreshWeatherWithoutBody(t *testing.T) {
	e, _ := newTestServer(t, &test.MockGenerativeModel{})
	session := test.StartSession(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/weather/refresh", session.AccessToken))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGenerateOutfitsOk(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)
	analyzeAndAdd(t, e, model, session.AccessToken, shirtAnalysis)
	analyzeAndAdd(t, e, model, session.AccessToken, jeansAnalysis)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken, models.GenerateOutfitsIn{Occasion: "Casual Day"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, model.GenerateCalls)
	assert.Contains(t, model.LastPrompt, "1. Shirt: Blue Cotton, Casual style, suitable for Summer season.")
	assert.Contains(t, model.LastPrompt, "Current weather: 68°F, Clear")
	assert.NotContains(t, model.LastPrompt, "Casual Day", "occasion is not sent to the model")

	var response models.OutfitListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Casual Day", response.Occasion)
	require.Len(t, response.Outfits, 2)

	first := response.Outfits[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "Easy Friday", first.OutfitName)
	assert.Equal(t, []int{1, 2}, first.Items)
	require.Len(t, first.ResolvedItems, 2)
	assert.Equal(t, "Shirt", first.ResolvedItems[0].Type)
	assert.Equal(t, "Jeans", first.ResolvedItems[1].Type)
	assert.Equal(t, 7.0, first.Sustainability.StatedScore)
	assert.Equal(t, 5.0, first.Sustainability.ItemsAverage)
	assert.Equal(t, "Medium", first.Sustainability.ItemsTier)

	assert.Equal(t, 6.0, response.Outfits[1].SustainabilityScore)
}

func TestGenerateOutfitsInvalidOccasion(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)
	analyzeAndAdd(t, e, model, session.AccessToken, shirtAnalysis)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken, models.GenerateOutfitsIn{Occasion: "Space Walk"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, model.GenerateCalls)
}

func TestGenerateOutfitsEmptyCloset(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, model.GenerateCalls)
}

func TestGenerateOutfitsFailureClearsList(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)
	analyzeAndAdd(t, e, model, session.AccessToken, shirtAnalysis)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	model.GenerateErr = errors.New("timeout")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodGet, "/outfits", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)
	var response models.OutfitListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotNil(t, response.Outfits)
	assert.Empty(t, response.Outfits)
}

func TestOutfitsSurviveItemRemoval(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)
	shirt := analyzeAndAdd(t, e, model, session.AccessToken, shirtAnalysis)
	analyzeAndAdd(t, e, model, session.AccessToken, jeansAnalysis)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodDelete, fmt.Sprintf("/closet/items/%d", shirt.ID), session.AccessToken))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodGet, "/outfits", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)
	var response models.OutfitListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Outfits, 2)
	require.Len(t, response.Outfits[0].ResolvedItems, 1)
	assert.Equal(t, "Jeans", response.Outfits[0].ResolvedItems[0].Type)
	assert.Empty(t, response.Outfits[1].ResolvedItems)
}

func TestOutfitFeedback(t *testing.T) {
	model := &test.MockGenerativeModel{GenerateResponse: twoOutfits}
	e, _ := newTestServer(t, model)
	session := test.StartSession(e)
	analyzeAndAdd(t, e, model, session.AccessToken, shirtAnalysis)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewAuthRequest(http.MethodPost, "/outfits/generate", session.AccessToken))
	require.Equal(t, http.StatusOK, rec.Code)

	cases := map[string]string{
		"like":    "Great! We'll recommend more like this.",
		"dislike": "Thanks for the feedback. We'll adjust our recommendations.",
		"save":    "Outfit saved to your favorites!",
	}
	for action, message := range cases {
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/2/feedback", session.AccessToken, models.OutfitFeedbackIn{Action: action}))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, message, response["message"])
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/2/feedback", session.AccessToken, models.OutfitFeedbackIn{Action: "love"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/3/feedback", session.AccessToken, models.OutfitFeedbackIn{Action: "like"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodPost, "/outfits/0/feedback", session.AccessToken, models.OutfitFeedbackIn{Action: "like"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
