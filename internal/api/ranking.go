package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nvoloshin/prepterm/internal/model"
)

type rankingResponse struct {
	AvgScore             float64 `json:"avgScore"`
	RegionalPercentile   int     `json:"regionalPercentile"`
	ExperiencePercentile int     `json:"experiencePercentile"`
	PercentileRank       int     `json:"percentileRank"`
	TotalCandidates      int     `json:"totalCandidates"`
}

// FetchRanking returns the peer-comparison standing for a session. The
// configured profile narrows the regional and experience cohorts.
func (c *Client) FetchRanking(ctx context.Context, sessionID string) (model.PeerComparison, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("session_id", sessionID)
	}
	if c.region != "" {
		query.Set("region", c.region)
	}
	if c.experienceYears > 0 {
		query.Set("experience_years", strconv.Itoa(c.experienceYears))
	}
	path := "/api/ranking"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var resp rankingResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return model.PeerComparison{}, fmt.Errorf("failed to fetch ranking: %w", err)
	}
	return model.PeerComparison{
		AvgScore:             resp.AvgScore,
		RegionalPercentile:   resp.RegionalPercentile,
		ExperiencePercentile: resp.ExperiencePercentile,
		OverallPercentile:    resp.PercentileRank,
		SampleSize:           resp.TotalCandidates,
	}, nil
}

type metricsResponse struct {
	ImprovementRate float64 `json:"improvementRate"`
}

// FetchImprovementRate returns the user's improvement-rate metric.
func (c *Client) FetchImprovementRate(ctx context.Context) (float64, error) {
	var resp metricsResponse
	if err := c.do(ctx, http.MethodGet, "/api/metrics", nil, &resp); err != nil {
		return 0, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	return resp.ImprovementRate, nil
}

type leaderboardResponse struct {
	Entries []struct {
		Rank     int     `json:"rank"`
		Name     string  `json:"name"`
		Score    float64 `json:"score"`
		Sessions int     `json:"sessions"`
		Region   string  `json:"region"`
	} `json:"entries"`
}

// Leaderboard returns backend standings, newest ranking first.
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	path := "/api/leaderboard"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp leaderboardResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	entries := make([]model.LeaderboardEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, model.LeaderboardEntry{
			Rank:     e.Rank,
			Name:     e.Name,
			Score:    e.Score,
			Sessions: e.Sessions,
			Region:   e.Region,
		})
	}
	return entries, nil
}
