package server

import (
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer() *httptest.Server {
	srv := NewServer(0, log.New(io.Discard, "", 0))
	return httptest.NewServer(srv.Handler())
}

func TestHandleRender(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	tests := []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{
			name:           "Default parameters",
			url:            "/api/render?width=16&height=12&rays=2&depth=1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Lightbox scene with view",
			url:            "/api/render?scene=lightbox&view=front&width=8&height=8&rays=2&depth=1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown scene",
			url:            "/api/render?scene=nonexistent&width=8&height=8",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown view",
			url:            "/api/render?view=sideways&width=8&height=8",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Width out of range",
			url:            "/api/render?width=100000",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-numeric depth",
			url:            "/api/render?depth=lots",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Depth beyond the cap",
			url:            "/api/render?depth=50",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.url)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.url, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected image/png, got %q", ct)
			}

			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatalf("Response is not a decodable PNG: %v", err)
			}
			if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
				t.Errorf("Decoded image has empty bounds: %v", img.Bounds())
			}
		})
	}
}

func TestHandleRender_MethodNotAllowed(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/render", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET /api/scenes: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var infos []SceneInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("Decoding scene list: %v", err)
	}

	names := make(map[string]bool)
	for _, info := range infos {
		names[info.Name] = true
		if len(info.Views) == 0 {
			t.Errorf("Scene %q lists no views", info.Name)
		}
	}
	if !names["default"] || !names["lightbox"] {
		t.Errorf("Expected default and lightbox scenes, got %v", names)
	}
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    int
		expectError bool
	}{
		{name: "Empty uses default", value: "", expected: 42},
		{name: "Valid value", value: "7", expected: 7},
		{name: "Lower bound", value: "1", expected: 1},
		{name: "Upper bound", value: "100", expected: 100},
		{name: "Below range", value: "0", expectError: true},
		{name: "Above range", value: "101", expectError: true},
		{name: "Not a number", value: "seven", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intParam(tt.value, 42, 1, 100)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected an error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("intParam(%q): %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
