package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/config"
	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

const youtubeAPIURL = "https://www.googleapis.com/youtube/v3"

// YouTubeResolver searches the YouTube Data API and filters out videos
// that cannot be embedded or are blocked in the configured region.
// Search responses are cached in redis keyed by the normalized query.
type YouTubeResolver struct {
	apiKey      string
	region      string
	httpClient  *http.Client
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewYouTubeResolver(cfg config.YouTube, redisClient *redis.Client, logger *logrus.Logger) *YouTubeResolver {
	return &YouTubeResolver{
		apiKey:      cfg.APIKey,
		region:      cfg.Region,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		redisClient: redisClient,
		logger:      logger,
	}
}

func (r *YouTubeResolver) Resolve(ctx context.Context, query string) (domain.Song, error) {
	songs, err := r.Search(ctx, query)
	if err != nil {
		return domain.Song{}, err
	}
	if len(songs) == 0 {
		return domain.Song{}, constant.SongNotFoundErr
	}
	return songs[0], nil
}

func (r *YouTubeResolver) Search(ctx context.Context, query string) ([]domain.Song, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, constant.SongNotFoundErr
	}

	cacheKey := constant.RedisSearchKeyPrefix + strings.ToLower(query)
	if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var songs []domain.Song
		if err := json.Unmarshal([]byte(cached), &songs); err == nil {
			return songs, nil
		}
		// stale or corrupt cache entry, fall through to the API
	}

	items, err := r.searchList(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, constant.SongNotFoundErr
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID.VideoID)
	}

	playable, err := r.checkRestrictions(ctx, ids)
	if err != nil {
		return nil, err
	}

	songs := make([]domain.Song, 0, len(items))
	for _, it := range items {
		if !playable[it.ID.VideoID] {
			continue
		}
		songs = append(songs, domain.Song{
			VideoID: it.ID.VideoID,
			Title:   it.Snippet.Title,
			Artist:  it.Snippet.ChannelTitle,
			URL:     "https://www.youtube.com/watch?v=" + it.ID.VideoID,
		})
	}
	if len(songs) == 0 {
		return nil, constant.SongNotFoundErr
	}

	if payload, err := json.Marshal(songs); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, payload, constant.SearchCacheTTL).Err(); err != nil {
			r.logger.Warnf("resolver: failed to cache search for %q: %v", query, err)
		}
	}

	return songs, nil
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
	} `json:"snippet"`
}

func (r *YouTubeResolver) searchList(ctx context.Context, query string) ([]searchItem, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("maxResults", "10")
	params.Set("q", query+" karaoke")
	params.Set("key", r.apiKey)

	var body struct {
		Items []searchItem `json:"items"`
	}
	if err := r.get(ctx, "/search", params, &body); err != nil {
		return nil, errors.Wrap(err, "resolver: youtube search failed")
	}
	return body.Items, nil
}

// checkRestrictions asks the videos endpoint whether each result is
// embeddable and not blocked in our region.
func (r *YouTubeResolver) checkRestrictions(ctx context.Context, videoIDs []string) (map[string]bool, error) {
	if len(videoIDs) == 0 {
		return map[string]bool{}, nil
	}

	params := url.Values{}
	params.Set("part", "status,contentDetails")
	params.Set("id", strings.Join(videoIDs, ","))
	params.Set("key", r.apiKey)

	var body struct {
		Items []struct {
			ID     string `json:"id"`
			Status struct {
				Embeddable bool `json:"embeddable"`
			} `json:"status"`
			ContentDetails struct {
				RegionRestriction struct {
					Blocked []string `json:"blocked"`
				} `json:"regionRestriction"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := r.get(ctx, "/videos", params, &body); err != nil {
		return nil, errors.Wrap(err, "resolver: youtube videos lookup failed")
	}

	playable := make(map[string]bool, len(body.Items))
	for _, it := range body.Items {
		blocked := false
		for _, region := range it.ContentDetails.RegionRestriction.Blocked {
			if strings.EqualFold(region, r.region) {
				blocked = true
				break
			}
		}
		playable[it.ID] = it.Status.Embeddable && !blocked
	}
	return playable, nil
}

func (r *YouTubeResolver) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, youtubeAPIURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	started := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api returned %d after %s", resp.StatusCode, time.Since(started))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
