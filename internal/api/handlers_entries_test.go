package api

import (
	"fmt"
	"net/http"
	"testing"
)

type entryResponse struct {
	ID           uint     `json:"id"`
	FoodSource   string   `json:"food_source"`
	AnxietyLevel int      `json:"anxiety_level"`
	TookMeds     bool     `json:"took_meds"`
	MedTypes     []string `json:"med_types"`
	MedsHelped   bool     `json:"meds_helped"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
}

func TestCreateEntryAndListRoundTrip(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	cookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")

	submitTestEntry(t, app, cookie, testEntryPayload(3))
	submitTestEntry(t, app, cookie, testEntryPayload(8))

	response := performJSONRequest(t, app, http.MethodGet, "/api/entries", cookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var list entryListResponse
	decodeJSONBody(t, response, &list)
	if list.Total != 2 || len(list.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %#v", list)
	}
	// Most recent entry first.
	if list.Entries[0].AnxietyLevel != 8 || list.Entries[1].AnxietyLevel != 3 {
		t.Fatalf("expected anxiety levels [8 3], got %#v", list.Entries)
	}
	if list.Entries[0].FoodSource != "Out" {
		t.Fatalf("expected food source Out, got %q", list.Entries[0].FoodSource)
	}
}

func TestCreateEntryClampsOutOfRangeInput(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	cookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")

	payload := testEntryPayload(42)
	payload["food_source"] = "Delivery"
	payload["took_meds"] = false
	payload["meds_helped"] = true

	response := performJSONRequest(t, app, http.MethodPost, "/api/entries", cookie, payload)
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	var created entryResponse
	decodeJSONBody(t, response, &created)
	if created.AnxietyLevel != 10 {
		t.Fatalf("expected anxiety clamped to 10, got %d", created.AnxietyLevel)
	}
	if created.FoodSource != "Home" {
		t.Fatalf("expected unknown food source to fall back to Home, got %q", created.FoodSource)
	}
	if created.MedsHelped || len(created.MedTypes) != 0 {
		t.Fatalf("expected med fields cleared without meds, got %#v", created)
	}
}

func TestListEntriesScopedToOwner(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	createTestUser(t, database, "riley@example.com", "hunter22")

	ashCookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")
	rileyCookie := loginAndExtractAuthCookie(t, app, "riley@example.com", "hunter22")

	submitTestEntry(t, app, ashCookie, testEntryPayload(6))

	response := performJSONRequest(t, app, http.MethodGet, "/api/entries", rileyCookie, nil)
	defer response.Body.Close()

	var list entryListResponse
	decodeJSONBody(t, response, &list)
	if list.Total != 0 {
		t.Fatalf("expected no entries visible across accounts, got %d", list.Total)
	}
}

func TestDeleteEntryAcrossOwnersNotFound(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	createTestUser(t, database, "riley@example.com", "hunter22")

	ashCookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")
	rileyCookie := loginAndExtractAuthCookie(t, app, "riley@example.com", "hunter22")

	submitTestEntry(t, app, ashCookie, testEntryPayload(6))

	listResponse := performJSONRequest(t, app, http.MethodGet, "/api/entries", ashCookie, nil)
	var list entryListResponse
	decodeJSONBody(t, listResponse, &list)
	listResponse.Body.Close()
	if list.Total != 1 {
		t.Fatalf("expected one entry to target, got %d", list.Total)
	}
	entryID := list.Entries[0].ID

	response := performJSONRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/entries/%d", entryID), rileyCookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for cross-owner delete, got %d", response.StatusCode)
	}

	remaining := performJSONRequest(t, app, http.MethodGet, "/api/entries", ashCookie, nil)
	defer remaining.Body.Close()
	decodeJSONBody(t, remaining, &list)
	if list.Total != 1 {
		t.Fatalf("expected the entry to survive a cross-owner delete, got %d", list.Total)
	}
}

func TestDeleteLatestEntry(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	cookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")

	submitTestEntry(t, app, cookie, testEntryPayload(3))
	submitTestEntry(t, app, cookie, testEntryPayload(8))

	response := performJSONRequest(t, app, http.MethodDelete, "/api/entries/latest", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	listResponse := performJSONRequest(t, app, http.MethodGet, "/api/entries", cookie, nil)
	defer listResponse.Body.Close()

	var list entryListResponse
	decodeJSONBody(t, listResponse, &list)
	if list.Total != 1 || list.Entries[0].AnxietyLevel != 3 {
		t.Fatalf("expected only the older entry to remain, got %#v", list)
	}
}

func TestDeleteLatestEntryEmptyTable(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	cookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")

	response := performJSONRequest(t, app, http.MethodDelete, "/api/entries/latest", cookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for empty table, got %d", response.StatusCode)
	}
}

func TestDeleteEntryRejectsMalformedID(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	cookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")

	response := performJSONRequest(t, app, http.MethodDelete, "/api/entries/abc", cookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed id, got %d", response.StatusCode)
	}
}

func TestClearEntriesRemovesOnlyOwnRows(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ash@example.com", "hunter22")
	createTestUser(t, database, "riley@example.com", "hunter22")

	ashCookie := loginAndExtractAuthCookie(t, app, "ash@example.com", "hunter22")
	rileyCookie := loginAndExtractAuthCookie(t, app, "riley@example.com", "hunter22")

	submitTestEntry(t, app, ashCookie, testEntryPayload(3))
	submitTestEntry(t, app, rileyCookie, testEntryPayload(9))

	response := performJSONRequest(t, app, http.MethodDelete, "/api/entries", ashCookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var list entryListResponse

	mine := performJSONRequest(t, app, http.MethodGet, "/api/entries", ashCookie, nil)
	decodeJSONBody(t, mine, &list)
	mine.Body.Close()
	if list.Total != 0 {
		t.Fatalf("expected cleared table for owner, got %d", list.Total)
	}

	others := performJSONRequest(t, app, http.MethodGet, "/api/entries", rileyCookie, nil)
	defer others.Body.Close()
	decodeJSONBody(t, others, &list)
	if list.Total != 1 {
		t.Fatalf("expected the other account untouched, got %d", list.Total)
	}
}
