package handler

import (
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/evakp/appointment-booking/internal/model"
)

func listSlotsRequest(date string) (*http.Request, *httptest.ResponseRecorder) {
    req := httptest.NewRequest(http.MethodGet, "/v1/slots?date="+date, nil)
    return req, httptest.NewRecorder()
}

func TestListSlotsOrderedByTime(t *testing.T) {
    adapter, mock := newMockStore(t)
    mock.ExpectQuery(`FROM time_slots WHERE date = \? ORDER BY time ASC`).
        WithArgs("2025-03-10").
        WillReturnRows(sqlmock.NewRows([]string{"id", "date", "time", "available"}).
            AddRow(1, "2025-03-10", "09:00", true).
            AddRow(2, "2025-03-10", "09:30", false))

    h := NewSlotHandler(adapter)
    h.now = fixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)) // not the listed date

    e := echo.New()
    req, rec := listSlotsRequest("2025-03-10")
    require.NoError(t, h.List(e.NewContext(req, rec)))

    assert.Equal(t, http.StatusOK, rec.Code)
    var resp struct {
        Date  string           `json:"date"`
        Count int              `json:"count"`
        Items []model.TimeSlot `json:"items"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 2, resp.Count)
    assert.Equal(t, "09:00", resp.Items[0].Time)
    assert.False(t, resp.Items[1].Available)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSlotsTodayHidesElapsedTimes(t *testing.T) {
    adapter, mock := newMockStore(t)
    mock.ExpectQuery(`FROM time_slots WHERE date = \?`).
        WithArgs("2025-03-10").
        WillReturnRows(sqlmock.NewRows([]string{"id", "date", "time", "available"}).
            AddRow(1, "2025-03-10", "09:00", true).
            AddRow(2, "2025-03-10", "10:00", true).
            AddRow(3, "2025-03-10", "10:30", true))

    h := NewSlotHandler(adapter)
    h.now = fixedClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))

    e := echo.New()
    req, rec := listSlotsRequest("2025-03-10")
    require.NoError(t, h.List(e.NewContext(req, rec)))

    var resp struct {
        Count int              `json:"count"`
        Items []model.TimeSlot `json:"items"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    require.Equal(t, 1, resp.Count, "09:00 is past and 10:00 equals now")
    assert.Equal(t, "10:30", resp.Items[0].Time)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSlotsInvalidDate(t *testing.T) {
    adapter, mock := newMockStore(t)

    h := NewSlotHandler(adapter)
    e := echo.New()
    req, rec := listSlotsRequest("10-03-2025")
    require.NoError(t, h.List(e.NewContext(req, rec)))

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet(), "no store read for a malformed date")
}

func TestListSlotsStoreErrorLooksLikeNoSlots(t *testing.T) {
    adapter, mock := newMockStore(t)
    mock.ExpectQuery(`FROM time_slots`).WillReturnError(errors.New("connection reset"))

    h := NewSlotHandler(adapter)
    h.now = fixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

    e := echo.New()
    req, rec := listSlotsRequest("2025-03-10")
    require.NoError(t, h.List(e.NewContext(req, rec)))

    assert.Equal(t, http.StatusOK, rec.Code)
    var resp struct {
        Count int              `json:"count"`
        Items []model.TimeSlot `json:"items"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Zero(t, resp.Count)
    assert.Empty(t, resp.Items)
    assert.NoError(t, mock.ExpectationsWereMet())
}
