package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

var categoryPlaceholder = regexp.MustCompile(`\{\{category:([^}]+)\}\}`)

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Given(`^I am not authenticated$`, iAmNotAuthenticated)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return errors.New("test server not initialized")
	}

	resp, err := http.Get(tc.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(instant)
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.executeRequest(method, tc.replacePlaceholders(path), nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	path = tc.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(tc.replacePlaceholders(body.Content))
	}
	return tc.executeRequest(method, path, payload)
}

// aUserExistsWithEmailAndPassword registers a user through the public API
// and stores the returned access token keyed by email.
func aUserExistsWithEmailAndPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)

	payload := map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to register user %s: status %d (body: %s)", email, resp.StatusCode, raw)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return err
	}
	token, ok := parsed["access_token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("register response for %s has no access_token: %s", email, raw)
	}
	tc.tokens[email] = token
	return nil
}

func iAmAuthenticatedAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	token, ok := tc.tokens[email]
	if !ok {
		return fmt.Errorf("no registered user with email %s", email)
	}
	tc.accessToken = token
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.accessToken = ""
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return errors.New("no response received")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	body, err := tc.parsedBody()
	if err != nil {
		return err
	}
	object, ok := body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %s", tc.responseBody)
	}
	if _, exists := object[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %s", field, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	body, err := tc.parsedBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	body, err := tc.parsedBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
	}
	return nil
}

// replacePlaceholders substitutes seeded category IDs and captured
// resource IDs into paths and request bodies.
func (tc *TestContext) replacePlaceholders(content string) string {
	content = categoryPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := categoryPlaceholder.FindStringSubmatch(match)[1]
		if id, ok := tc.categories[name]; ok {
			return id
		}
		return match
	})
	for key, id := range tc.lastIDs {
		content = strings.ReplaceAll(content, "{{"+key+"}}", id)
	}
	return content
}

func (tc *TestContext) executeRequest(method, path string, payload []byte) error {
	url := tc.server.URL + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.response = resp
	tc.responseBody = body
	tc.captureResourceID(method, path)
	return nil
}

// captureResourceID remembers the ID of a freshly created expense or
// budget so later steps can reference it via placeholders.
func (tc *TestContext) captureResourceID(method, path string) {
	if method != http.MethodPost || tc.response.StatusCode != http.StatusOK {
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return
	}
	id, ok := parsed["id"].(string)
	if !ok || id == "" {
		return
	}

	switch {
	case strings.Contains(path, "/expenses"):
		tc.lastIDs["expense_id"] = id
	case strings.Contains(path, "/budgets"):
		tc.lastIDs["budget_id"] = id
	}
}

// parsedBody decodes the last response. Listing endpoints return bare
// JSON arrays, so the decoded document may be an array or an object.
func (tc *TestContext) parsedBody() (any, error) {
	if tc.response == nil {
		return nil, errors.New("no response received")
	}
	var body any
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return nil, fmt.Errorf("response is not JSON: %s", tc.responseBody)
	}
	return body, nil
}

// getFieldValue resolves a dot-separated path like "budgets.0.spent_amount"
// against a decoded JSON document. Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}
		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}
		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}
	return field
}
