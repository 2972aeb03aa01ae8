package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/models"
	"github.com/Mat0512/roadbuddy-client/services/chat/mocks"
)

func setupHandler(t *testing.T) (*ChatHandler, *mocks.MockChatUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockChatUC(ctrl)
	return NewChatHandler(mockUC), mockUC
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSendMessageSuccess(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		Send(gomock.Any(), models.SendChatMessage{
			SenderID:   "user-1",
			ReceiverID: "provider-1",
			Message:    "On my way",
		}).
		Return(&models.ChatMessage{
			ID:         "msg-1",
			SenderID:   "user-1",
			ReceiverID: "provider-1",
			Message:    "On my way",
		}, nil)

	body := `{"sender_id":"user-1","receiver_id":"provider-1","message":"On my way"}`
	c, rec := newContext(http.MethodPost, "/chat/send", body)

	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "msg-1")
}

func TestSendMessageMissingReceiver(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := newContext(http.MethodPost, "/chat/send", `{"sender_id":"user-1","message":"Hello"}`)

	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageFailure(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unavailable"))

	body := `{"sender_id":"user-1","receiver_id":"provider-1","message":"Hello"}`
	c, rec := newContext(http.MethodPost, "/chat/send", body)

	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetMessagesSuccess(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		History(gomock.Any(), "provider-1").
		Return([]models.ChatMessage{
			{ID: "msg-1", Message: "Hello"},
			{ID: "msg-2", Message: "Hi"},
		}, nil)

	c, rec := newContext(http.MethodGet, "/chat/messages/provider-1", "")
	c.SetParamNames("counterpartID")
	c.SetParamValues("provider-1")

	require.NoError(t, h.GetMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "msg-2")
}

func TestGetMessagesFailure(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		History(gomock.Any(), "provider-1").
		Return(nil, errors.New("backend unavailable"))

	c, rec := newContext(http.MethodGet, "/chat/messages/provider-1", "")
	c.SetParamNames("counterpartID")
	c.SetParamValues("provider-1")

	require.NoError(t, h.GetMessages(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
