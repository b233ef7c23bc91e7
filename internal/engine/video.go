package engine

import (
	"context"
	"fmt"
	"strings"

	"forgefit/workout-planner/internal/clients/tavily"
	"forgefit/workout-planner/internal/domain"
)

var videoDomains = []string{"youtube.com", "youtu.be"}

// findVideo resolves a video link for a workout day, best effort: a search
// for the specific exercise, then a broader generic search, then a
// deterministic search-engine URL. It never fails and never returns "".
func (e *Engine) findVideo(ctx context.Context, exerciseName string, prefs domain.Preferences) string {
	query := fmt.Sprintf("%s %s %s workout YouTube", exerciseName, prefs.Gear, prefs.Mission)
	if u := e.searchVideo(ctx, query, 5); u != "" {
		return u
	}
	if u := e.findGenericVideo(ctx, prefs); u != "" {
		return u
	}
	return youtubeSearchURL(exerciseName, string(prefs.Mission), string(prefs.Gear))
}

// findGenericVideo searches for a routine matching the preferences rather
// than a specific exercise. Returns "" when nothing was found.
func (e *Engine) findGenericVideo(ctx context.Context, prefs domain.Preferences) string {
	query := fmt.Sprintf("%s with %s %s workout routine YouTube", prefs.Mission, prefs.Gear, prefs.TimeCommitment)
	return e.searchVideo(ctx, query, 3)
}

// searchVideo runs one lookup and extracts the first YouTube URL. Backend
// errors are logged and reported as "no result".
func (e *Engine) searchVideo(ctx context.Context, query string, maxResults int) string {
	results, err := e.video.Search(ctx, query, tavily.SearchOptions{
		IncludeDomains: videoDomains,
		MaxResults:     maxResults,
	})
	if err != nil {
		e.log.Warn("video search failed", "query", query, "error", err.Error())
		return ""
	}
	for _, r := range results {
		if strings.Contains(r.URL, "youtube.com") || strings.Contains(r.URL, "youtu.be") {
			return r.URL
		}
	}
	return ""
}
