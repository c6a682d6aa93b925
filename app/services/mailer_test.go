package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendInviteEmail(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("payload is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	err := SendInviteEmail(server.URL, "student@example.com", "http://localhost/data/invitee/add?token=abc")
	if err != nil {
		t.Fatal(err)
	}
	if got["email"] != "student@example.com" {
		t.Errorf("webhook received email %q", got["email"])
	}
	if got["link"] == "" {
		t.Error("webhook received no form link")
	}
}

func TestSendInviteEmailServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if err := SendInviteEmail(server.URL, "a@example.com", "link"); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestSendInviteEmailNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	if err := SendInviteEmail(server.URL, "a@example.com", "link"); err == nil {
		t.Fatal("expected error for non-JSON response body")
	}
}

func TestSendInviteEmailUnconfigured(t *testing.T) {
	if err := SendInviteEmail("", "a@example.com", "link"); err == nil {
		t.Fatal("expected error when webhook URL is empty")
	}
}
