package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upsert(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "id": "42"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	id, err := client.Upsert(context.Background(), EntryPayload{
		Date:            "2024-03-05",
		WorkerID:        "w-1",
		CheckIn:         "08:00",
		CheckOut:        "20:00",
		BreakMinutes:    60,
		WorkingHours:    11,
		OTHours:         1,
		OTPay:           decimal.NewFromInt(150),
		IsRejectedLeave: false,
		IsApprovedLeave: false,
		AdvancePayment:  decimal.Zero,
		UpdatedAt:       1709640000000,
	})

	require.NoError(t, err)
	assert.Equal(t, "42", id)

	// The sheet script reads these exact keys; a rename here breaks rows
	// silently on the other side.
	for _, key := range []string{
		"date", "workerId", "checkIn", "checkOut", "breakMinutes",
		"workingHours", "otHours", "otPay", "isRejectedLeave",
		"isApprovedLeave", "advancePayment", "updatedAt",
	} {
		assert.Contains(t, received, key)
	}
	assert.Equal(t, "w-1", received["workerId"])
	assert.Equal(t, float64(1709640000000), received["updatedAt"])
}

func TestClient_Upsert_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "bad row"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Upsert(context.Background(), EntryPayload{WorkerID: "w-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad row")
}

func TestClient_Upsert_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Upsert(context.Background(), EntryPayload{WorkerID: "w-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Delete(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	require.NoError(t, client.Delete(context.Background(), "42"))
	assert.Equal(t, "delete", received["action"])
	assert.Equal(t, "42", received["id"])
}
