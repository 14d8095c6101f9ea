package azure_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwright/cardwright/pkg/adapters/azure"
)

// echoServer answers every request by reversing nothing: each input text comes
// back prefixed, so tests can verify order and pairing.
func echoServer(t *testing.T, gotHeaders *http.Header, batchSizes *[]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotHeaders != nil {
			*gotHeaders = r.Header.Clone()
		}

		var body []struct {
			Text string `json:"Text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if batchSizes != nil {
			*batchSizes = append(*batchSizes, len(body))
		}

		lang := r.URL.Query().Get("to")
		type translation struct {
			Text string `json:"text"`
			To   string `json:"to"`
		}
		out := make([]struct {
			Translations []translation `json:"translations"`
		}, len(body))
		for i, item := range body {
			out[i].Translations = []translation{{Text: "t:" + item.Text, To: lang}}
		}
		json.NewEncoder(w).Encode(out)
	}))
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := azure.New("")
	assert.Error(t, err)
}

func TestClient_TranslateRequestShape(t *testing.T) {
	var headers http.Header
	srv := echoServer(t, &headers, nil)
	defer srv.Close()

	client, err := azure.New("secret",
		azure.WithEndpoint(srv.URL+"/translate?api-version=3.0"),
		azure.WithRegion("westeurope"),
	)
	require.NoError(t, err)

	out, err := client.Translate(context.Background(), []string{"Hello", "World"}, "ms")
	require.NoError(t, err)
	assert.Equal(t, []string{"t:Hello", "t:World"}, out)

	assert.Equal(t, "secret", headers.Get("Ocp-Apim-Subscription-Key"))
	assert.Equal(t, "westeurope", headers.Get("Ocp-Apim-Subscription-Region"))
	assert.Contains(t, headers.Get("Content-Type"), "application/json")
}

func TestClient_ChunksLargeBatches(t *testing.T) {
	var sizes []int
	srv := echoServer(t, nil, &sizes)
	defer srv.Close()

	client, err := azure.New("secret", azure.WithEndpoint(srv.URL+"/translate?api-version=3.0"))
	require.NoError(t, err)

	texts := make([]string, 250)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	out, err := client.Translate(context.Background(), texts, "fr")
	require.NoError(t, err)
	require.Len(t, out, 250)

	// The 100-text service limit splits 250 inputs into 100+100+50.
	assert.Equal(t, []int{100, 100, 50}, sizes)

	// Order is preserved across chunk boundaries.
	assert.Equal(t, "t:text-0", out[0])
	assert.Equal(t, "t:text-100", out[100])
	assert.Equal(t, "t:text-249", out[249])
}

func TestClient_RejectsUnsupportedLanguage(t *testing.T) {
	client, err := azure.New("secret")
	require.NoError(t, err)

	_, err = client.Translate(context.Background(), []string{"Hello"}, "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klingon")
}

func TestClient_SurfacesServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401000,"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := azure.New("wrong", azure.WithEndpoint(srv.URL+"/translate?api-version=3.0"))
	require.NoError(t, err)

	_, err = client.Translate(context.Background(), []string{"Hello"}, "ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_RejectsShortResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// One result regardless of input size.
		w.Write([]byte(`[{"translations":[{"text":"only one","to":"ms"}]}]`))
	}))
	defer srv.Close()

	client, err := azure.New("secret", azure.WithEndpoint(srv.URL+"/translate?api-version=3.0"))
	require.NoError(t, err)

	_, err = client.Translate(context.Background(), []string{"Hello", "World"}, "ms")
	require.Error(t, err)
}

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, azure.IsSupportedLanguage("ms"))
	assert.True(t, azure.IsSupportedLanguage("fr"))
	assert.True(t, azure.IsSupportedLanguage("zh-Hans"))
	assert.False(t, azure.IsSupportedLanguage(""))
	assert.False(t, azure.IsSupportedLanguage("xx"))
}
