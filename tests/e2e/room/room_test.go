//go:build e2e

package room_test

import (
	"net/http"
	"testing"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type roomSuite struct {
	e2e.SharedSuite

	adminToken   string
	studentToken string
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(roomSuite))
}

func (s *roomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@unsil.ac.id", string(user.RoleAdmin))
	s.studentToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "siti@student.unsil.ac.id", string(user.RoleStudent))
}

func (s *roomSuite) listRooms(query string) ([]response.RoomResponse, string) {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+query, nil, s.studentToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rooms []response.RoomResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
	return rooms, w.Header().Get("X-Cache")
}

func (s *roomSuite) TestCatalogue() {
	s.Run("作成した部屋が一覧に出てキャッシュが破棄される", func() {
		t := s.T()

		rooms, cacheState := s.listRooms("")
		assert.Empty(t, rooms)
		assert.Equal(t, "MISS", cacheState)

		_, cacheState = s.listRooms("")
		assert.Equal(t, "HIT", cacheState)

		body := request.CreateRoomRequest{Name: "Aula Utama", Capacity: 200, Location: "Gedung A Lantai 1"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		rooms, cacheState = s.listRooms("")
		assert.Equal(t, "MISS", cacheState)
		require.Len(t, rooms, 1)
		assert.Equal(t, "Aula Utama", rooms[0].Name)
		assert.True(t, rooms[0].IsActive)
	})

	s.Run("非公開の部屋は active=true で除外される", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, "Kelas 101", 40)
		hidden := dbtest.CreateTestRoom(t, s.DB, "Gudang", 5)
		dbtest.SetRoomActive(t, s.DB, hidden, false)

		all, _ := s.listRooms("")
		assert.Len(t, all, 2)

		active, _ := s.listRooms("?active=true")
		require.Len(t, active, 1)
		assert.Equal(t, "Kelas 101", active[0].Name)
	})

	s.Run("同名の部屋は409", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, "Kelas 101", 40)
		body := request.CreateRoomRequest{Name: "Kelas 101", Capacity: 10, Location: "Gedung C"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("学生は部屋を作れない", func() {
		t := s.T()

		body := request.CreateRoomRequest{Name: "Kelas 102", Capacity: 10, Location: "Gedung C"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body, s.studentToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("予約履歴のある部屋は削除できない", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lab Komputer 1", 30)
		userID := dbtest.CreateTestUser(t, s.DB, "budi@student.unsil.ac.id", string(user.RoleStudent))
		dbtest.CreateTestReservation(t, s.DB, userID, roomID, builder.At(9, 0), builder.At(10, 0), "DIBATALKAN")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, roomsURL+"/"+roomID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("部屋の更新は部分的に適用される", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Ruang Rapat B", 15)
		capacity := 20
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, roomsURL+"/"+roomID.String(),
			request.UpdateRoomRequest{Capacity: &capacity}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.Equal(t, int32(20), got.Capacity)
		assert.Equal(t, "Ruang Rapat B", got.Name)
	})
}

func (s *roomSuite) TestReport() {
	s.Run("状態別の件数集計", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lab Komputer 1", 30)
		userID := dbtest.CreateTestUser(t, s.DB, "budi@student.unsil.ac.id", string(user.RoleStudent))
		dbtest.CreateTestReservation(t, s.DB, userID, roomID, builder.At(9, 0), builder.At(10, 0), "DISETUJUI")
		dbtest.CreateTestReservation(t, s.DB, userID, roomID, builder.At(9, 0), builder.At(10, 0), "MENUNGGU")
		dbtest.CreateTestReservation(t, s.DB, userID, roomID, builder.At(10, 0), builder.At(11, 0), "MENUNGGU")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/reports/summary", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var summary response.ReportSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))
		assert.Equal(t, int64(3), summary.Total)

		counts := map[string]int64{}
		for _, c := range summary.ByStatus {
			counts[c.Status] = c.Total
		}
		assert.Equal(t, int64(1), counts["DISETUJUI"])
		assert.Equal(t, int64(2), counts["MENUNGGU"])
	})
}
