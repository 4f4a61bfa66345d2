package video

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelID = "UCLakeShow"

const searchJSON = `{
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "older"},
      "snippet": {
        "publishedAt": "2025-02-01T18:00:00Z",
        "channelId": "UCLakeShow",
        "channelTitle": "Late Night Lake Show",
        "title": "Bron&#39;s 40 piece",
        "description": "Recap",
        "thumbnails": {"default": {"url": "https://i.ytimg.com/older/default.jpg"}, "high": {"url": "https://i.ytimg.com/older/hq.jpg"}}
      }
    },
    {
      "id": {"kind": "youtube#video", "videoId": "newer"},
      "snippet": {
        "publishedAt": "2025-02-05T18:00:00Z",
        "title": "Trade grades",
        "thumbnails": {"medium": {"url": "https://i.ytimg.com/newer/mq.jpg"}}
      }
    },
    {"id": {"kind": "youtube#channel"}, "snippet": {"title": "not a video"}}
  ]
}`

const channelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
  <title>Late Night Lake Show</title>
  <entry>
    <id>yt:video:abc123</id>
    <yt:videoId>abc123</yt:videoId>
    <yt:channelId>UCLakeShow</yt:channelId>
    <title>Postgame Live</title>
    <author><name>Late Night Lake Show</name></author>
    <published>2025-02-06T04:30:00+00:00</published>
    <media:group>
      <media:title>Postgame Live</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/abc123/hqdefault.jpg" width="480" height="360"/>
      <media:description>Live reactions after the buzzer.</media:description>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:def456</id>
    <yt:videoId>def456</yt:videoId>
    <title>Film Room</title>
    <published>2025-02-01T04:30:00+00:00</published>
  </entry>
</feed>`

func recordingClient(body string, status int, seen *[]string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, u string) (interfaces.Response, error) {
			*seen = append(*seen, u)
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

func TestService_Recent_FromAPI(t *testing.T) {
	var seen []string
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient(searchJSON, 200, &seen)}, channelID, "key-1", time.Minute)

	videos, err := svc.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "newer", videos[0].ID)
	assert.Equal(t, "https://i.ytimg.com/newer/mq.jpg", videos[0].Thumbnail)
	assert.Equal(t, "older", videos[1].ID)
	assert.Equal(t, "Bron's 40 piece", videos[1].Title)
	assert.Equal(t, "https://i.ytimg.com/older/hq.jpg", videos[1].Thumbnail)
	assert.Equal(t, time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC), videos[1].PublishedAt)

	require.Len(t, seen, 1)
	parsed, err := url.Parse(seen[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(seen[0], defaultAPIBase+"/search?"))
	q := parsed.Query()
	assert.Equal(t, "snippet", q.Get("part"))
	assert.Equal(t, channelID, q.Get("channelId"))
	assert.Equal(t, "date", q.Get("order"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "key-1", q.Get("key"))
}

func TestService_Latest_FromFeed(t *testing.T) {
	var seen []string
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient(channelFeed, 200, &seen)}, channelID, "", time.Minute)

	latest, err := svc.Latest(context.Background())

	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "abc123", latest.ID)
	assert.Equal(t, "Postgame Live", latest.Title)
	assert.Equal(t, "Live reactions after the buzzer.", latest.Description)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", latest.Thumbnail)
	assert.Equal(t, channelID, latest.ChannelID)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", latest.URL())

	require.Len(t, seen, 1)
	assert.Equal(t, defaultFeedBase+"?channel_id="+channelID, seen[0])
}

func TestParseChannelFeed_Order(t *testing.T) {
	videos, err := ParseChannelFeed([]byte(channelFeed))

	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "def456", videos[1].ID)
	assert.Empty(t, videos[1].Thumbnail)
}

func TestService_Latest_NoVideos(t *testing.T) {
	var seen []string
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient(`{"items":[]}`, 200, &seen)}, channelID, "key", time.Minute)

	latest, err := svc.Latest(context.Background())

	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestService_APIError(t *testing.T) {
	var seen []string
	body := `{"error":{"code":403,"message":"quotaExceeded"}}`
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient(body, 403, &seen)}, channelID, "key", time.Minute)

	_, err := svc.Latest(context.Background())

	apiErr, ok := coreerrors.AsExternalAPI(err)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "quotaExceeded", apiErr.Message)
	assert.Equal(t, "YouTube Data API", apiErr.API)
}

func TestService_NotConfigured(t *testing.T) {
	var seen []string
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient("", 200, &seen)}, "", "", time.Minute)

	_, err := svc.Recent(context.Background(), 5)

	assert.True(t, coreerrors.IsConfiguration(err))
	assert.Empty(t, seen)
}

func TestService_CacheRoundTrip(t *testing.T) {
	store := map[string][]byte{}
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			if v, ok := store[key]; ok {
				return v, nil
			}
			return nil, interfaces.ErrCacheMiss
		},
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			store[key] = value
			return nil
		},
	}
	var seen []string
	svc := NewService(interfaces.Dependencies{HTTPClient: recordingClient(channelFeed, 200, &seen), Cache: cache}, channelID, "", time.Minute)

	first, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, seen, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, first[0].PublishedAt.Equal(second[0].PublishedAt))
}
