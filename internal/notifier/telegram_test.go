package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifier(apiBase string) *TelegramNotifier {
	n := NewTelegramNotifier("test-token", "12345", "")
	n.APIBase = apiBase
	return n
}

func TestSendMessagePayload(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	require.NoError(t, n.SendMessage("hello *world*"))

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotPayload["chat_id"])
	assert.Equal(t, "hello *world*", gotPayload["text"])
	assert.Equal(t, "Markdown", gotPayload["parse_mode"])
	assert.Equal(t, true, gotPayload["disable_web_page_preview"])
}

func TestSendMessageMissingCredentials(t *testing.T) {
	n := NewTelegramNotifier("", "", "")
	err := n.SendMessage("hi")
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	err := testNotifier(srv.URL).SendMessage("hi")
	assert.ErrorIs(t, err, ErrDelivery)
	assert.Contains(t, err.Error(), "400")
}

func TestSendPhotoUploadsMultipart(t *testing.T) {
	photo := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(photo, []byte("png-bytes"), 0644))

	var gotPath, gotChatID, gotCaption string
	var gotFile []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotChatID = r.FormValue("chat_id")
		gotCaption = r.FormValue("caption")
		f, _, err := r.FormFile("photo")
		require.NoError(t, err)
		defer f.Close()
		buf := make([]byte, 64)
		nRead, _ := f.Read(buf)
		gotFile = buf[:nRead]
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	require.NoError(t, n.SendPhoto(photo, "caption-text"))

	assert.Equal(t, "/bottest-token/sendPhoto", gotPath)
	assert.Equal(t, "12345", gotChatID)
	assert.Equal(t, "caption-text", gotCaption)
	assert.Equal(t, "png-bytes", string(gotFile))
}

func TestSendPhotoMissingFile(t *testing.T) {
	n := testNotifier("http://unused.invalid")
	err := n.SendPhoto(filepath.Join(t.TempDir(), "missing.png"), "")
	assert.ErrorIs(t, err, ErrDelivery)
}
