package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"ecostyleapi/models"
	"ecostyleapi/services"

	"github.com/labstack/echo/v4"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewJSONAuthRequest(method string, target string, token string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

func NewAuthRequest(method string, target string, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

// NewImageUploadRequest builds the multipart form the closet upload expects.
func NewImageUploadRequest(target string, token string, fileName string, data []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		log.Fatalf("Error creating form file: %v", err)
	}
	part.Write(data)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

// StartSession opens a session on e and returns its token.
func StartSession(e *echo.Echo) models.SessionOut {
	req := NewJSONRequest(http.MethodPost, "/session", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		log.Fatalf("Could not start session: %d %s", rec.Code, rec.Body.String())
	}
	var out models.SessionOut
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		log.Fatalf("Could not decode session: %v", err)
	}
	return out
}

func FakePNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 120, B: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Fatalf("Error encoding fake png: %v", err)
	}
	return buf.Bytes()
}

// MockGenerativeModel answers with canned text and counts calls.
type MockGenerativeModel struct {
	AnalyzeResponse  string
	AnalyzeErr       error
	GenerateResponse string
	GenerateErr      error

	AnalyzeCalls  int
	GenerateCalls int
	LastPrompt    string
}

func (m *MockGenerativeModel) Analyze(ctx context.Context, image []byte, mimeType string) (*services.LLMResponse, error) {
	m.AnalyzeCalls++
	if m.AnalyzeErr != nil {
		return nil, m.AnalyzeErr
	}
	return &services.LLMResponse{Response: m.AnalyzeResponse, IsTest: true}, nil
}

func (m *MockGenerativeModel) Generate(ctx context.Context, prompt string) (*services.LLMResponse, error) {
	m.GenerateCalls++
	m.LastPrompt = prompt
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return &services.LLMResponse{Response: m.GenerateResponse, IsTest: true}, nil
}

// FixedWeather always reports the same reading.
type FixedWeather struct {
	Reading   models.WeatherReading
	Locations []string
}

func (f *FixedWeather) Current(ctx context.Context, location string) models.WeatherReading {
	f.Locations = append(f.Locations, location)
	return f.Reading
}
