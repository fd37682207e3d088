package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/2beens/posecoach/internal"
	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/pose"
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

func (s *IntegrationTestSuite) doRequest(method, path string, body []byte) (*http.Response, []byte) {
	req, err := http.NewRequest(method, serverEndpoint+path, bytes.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("Origin", testOrigin)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	s.Require().NoError(err)
	defer func() {
		s.NoError(resp.Body.Close())
	}()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, respBody
}

func (s *IntegrationTestSuite) TestHealth() {
	resp, body := s.doRequest(http.MethodGet, "/health", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var health internal.HealthResponse
	s.Require().NoError(json.Unmarshal(body, &health))
	s.Equal("ok", health.Status)
	s.Equal("test-version-info", health.Version)
	s.Equal("client", health.DetectorMode)
}

func (s *IntegrationTestSuite) TestExercises() {
	resp, body := s.doRequest(http.MethodGet, "/exercises", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))

	var list exercises.ListResponse
	s.Require().NoError(json.Unmarshal(body, &list))
	s.Equal(9, list.Total)

	slugs := make([]string, 0, len(list.Exercises))
	for _, ex := range list.Exercises {
		slugs = append(slugs, ex.Slug)
	}
	s.Contains(slugs, "push-ups")
	s.Contains(slugs, "plank")
	s.Contains(slugs, "calibration")

	resp, body = s.doRequest(http.MethodGet, "/exercises/plank", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var plank exercises.DefinitionResponse
	s.Require().NoError(json.Unmarshal(body, &plank))
	s.Equal(float64(30), plank.TargetDurationSec)

	resp, body = s.doRequest(http.MethodGet, "/exercises/moonwalk", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("exercise not supported\n", string(body))
}

func (s *IntegrationTestSuite) TestEvaluate() {
	payload, err := json.Marshal(formcheck.EvaluateRequest{
		Pose: &pose.Pose{Keypoints: []pose.Keypoint{
			{Name: pose.Nose, X: 320, Y: 40, Score: 0.9},
		}},
	})
	s.Require().NoError(err)

	resp, body := s.doRequest(http.MethodPost, "/exercises/calibration/evaluate", payload)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var res formcheck.Result
	s.Require().NoError(json.Unmarshal(body, &res))
	s.False(res.IsGoodForm)
	s.Equal(formcheck.KindWarning, res.Kind)
	s.Equal(formcheck.FullBodyNotVisibleMessage, res.Feedback)
}
