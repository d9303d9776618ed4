//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/common/testutil"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type countingFlusher struct{ flushes int }

func (f *countingFlusher) Flush() { f.flushes++ }

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockRoomCommands
	mockQueries      *queriesmock.MockRoomQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockSchedule     *queriesmock.MockScheduleQueries
	cache            *countingFlusher
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockSchedule = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.cache = &countingFlusher{}

	h := api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockAvailability, s.mockSchedule, s.cache)
	s.router.GET("/rooms", h.List)
	s.router.GET("/rooms/:id", h.Get)
	s.router.POST("/rooms", h.Create)
	s.router.PATCH("/rooms/:id", h.Update)
	s.router.DELETE("/rooms/:id", h.Delete)
	s.router.GET("/rooms/:id/availability", h.Availability)
	s.router.GET("/rooms/:id/schedule", h.Schedule)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	active := builder.NewRoomBuilder().BuildView()
	inactive := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Name = "Gudang" }).AsInactive().BuildView()

	s.Run("success: all rooms by default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return([]*queries.RoomView{active, inactive}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(active.ID, response[0].ID)
		s.Equal(active.Capacity, response[0].Capacity)
		s.False(response[1].IsActive)
	})

	s.Run("success: active filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?active=true", nil, "")

		var response []any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response)
		s.Empty(response)
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	b := builder.NewRoomBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 and the cache is flushed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), room.Attributes{
			Name:        b.Name,
			Description: b.Description,
			Capacity:    b.Capacity,
			Location:    b.Location,
			IsActive:    true,
		}).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Name, response.Name)
		s.Equal(1, s.cache.flushes)
	})

	s.Run("success: omitted isActive defaults to active", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, attrs room.Attributes) (uuid.UUID, error) {
				s.True(attrs.IsActive)
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("isActive", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "capacity 0", mutate: testutil.Field("capacity", 0)},
			{name: "blank name", mutate: testutil.Field("name", " ")},
			{name: "missing location", mutate: testutil.Field("location", nil)},
			{name: "bad image url", mutate: testutil.Field("imageUrl", "not a url")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
			})
		}
	})

	s.Run("error: 409 on a duplicate name and the cache is kept", func() {
		before := s.cache.flushes
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, room.ErrRoomNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room name already in use")
		s.Equal(before, s.cache.flushes)
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	view := builder.NewRoomBuilder().BuildView()
	url := "/rooms/" + view.ID.String()

	s.Run("success: only sent fields reach the patch", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p commands.RoomPatch) error {
				s.Require().NotNil(p.Capacity)
				s.Equal(45, *p.Capacity)
				s.Nil(p.Name)
				s.Nil(p.IsActive)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"capacity": 45}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(1, s.cache.flushes)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(room.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Aula"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(1, s.cache.flushes)
	})

	s.Run("error: 409 while reservations reference the room", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(room.ErrRoomInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room has reservations")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	start := builder.At(9, 0)
	end := builder.At(10, 0)
	target := "/rooms/" + id.String() + "/availability?start=" + url.QueryEscape(start.Format(time.RFC3339)) + "&end=" + url.QueryEscape(end.Format(time.RFC3339))

	s.Run("success: reports the conflict kind", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, gotStart, gotEnd time.Time) (*queries.AvailabilityView, error) {
				s.True(gotStart.Equal(start))
				s.True(gotEnd.Equal(end))
				return &queries.AvailabilityView{RoomID: id, StartTime: gotStart, EndTime: gotEnd, Conflict: "blocked"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, target, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Equal("blocked", response.Conflict)
	})

	s.Run("error: 400 when end is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String()+"/availability?start="+url.QueryEscape(start.Format(time.RFC3339)), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestSchedule() {
	id := uuid.New()

	s.Run("success: entries keep their order", func() {
		entries := []queries.ScheduleEntry{
			{Kind: queries.ScheduleReservation, ID: uuid.New(), StartTime: builder.At(8, 0), EndTime: builder.At(9, 0), Label: "Kuliah umum"},
			{Kind: queries.ScheduleBlocked, ID: uuid.New(), StartTime: builder.At(13, 0), EndTime: builder.At(15, 0), Label: "Perawatan AC"},
		}
		s.mockSchedule.EXPECT().RoomDay(gomock.Any(), id, "2030-03-04").
			Return(&queries.RoomSchedule{RoomID: id, Date: "2030-03-04", Entries: entries}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String()+"/schedule?date=2030-03-04", nil, "")

		var response resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Entries, 2)
		s.Equal("reservation", response.Entries[0].Kind)
		s.Equal("blocked", response.Entries[1].Kind)
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String()+"/schedule?date=04-03-2030", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}
