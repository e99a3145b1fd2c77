package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalinn/radialbuild/test"
)

type response struct {
	status      int
	contentType string
	body        string
}

func request(t *testing.T, method, target, body string) response {
	t.Helper()
	server := httptest.NewServer(NewRouter())
	defer server.Close()

	req, err := http.NewRequest(method, server.URL+target, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	content, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return response{status: res.StatusCode, contentType: res.Header.Get("Content-Type"), body: string(content)}
}

const plotBody = `
title: Web Build
build:
  fw:
    thickness: 4
    composition: {RAFM: 1.0}
  vv:
    thickness: 30
`

const modelBody = `
major_rad: 1000
minor_rad_z: 100
minor_rad_xy: 100
build:
  fw:
    thickness: 4
    composition: {RAFM: 1.0}
materials:
  - id: 1
    name: RAFM
    density: {units: g/cm3, value: 7.8}
    nuclides:
      - {name: Fe56, wo: 1.0}
`

const parastellBody = `
phi_list: [0, 60]
theta_list: [0, 90]
radial_build:
  fw:
    thickness_matrix: [[1, 2], [3, 4]]
    h5m_tag: Iron
`

func TestHealth(t *testing.T) {
	res := request(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, res.status)
	if diff := test.DiffJSON(t, []byte(`{"status": "ok"}`), []byte(res.body)); diff != "" {
		t.Errorf("actual != expected\n%s", diff)
	}
}

func TestPlot(t *testing.T) {
	res := request(t, http.MethodPost, "/plot", plotBody)
	require.Equal(t, http.StatusOK, res.status, res.body)
	assert.Equal(t, "image/svg+xml", res.contentType)
	assert.Contains(t, res.body, "<title>Web Build</title>")

	res = request(t, http.MethodPost, "/plot?format=png", plotBody)
	require.Equal(t, http.StatusOK, res.status, res.body)
	assert.Equal(t, "image/png", res.contentType)
	assert.True(t, strings.HasPrefix(res.body, "\x89PNG"))
}

func TestPlotErrors(t *testing.T) {
	type testCase struct {
		name   string
		target string
		body   string
		status int
		check  func(t *testing.T, body string)
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		res := request(t, http.MethodPost, tc.target, tc.body)
		assert.Equal(t, tc.status, res.status, res.body)
		if tc.check != nil {
			tc.check(t, res.body)
		}
	}

	for _, tc := range []testCase{
		{
			name:   "Malformed",
			target: "/plot",
			body:   "build: [",
			status: http.StatusBadRequest,
			check: func(t *testing.T, body string) {
				assert.Equal(t, `"malformed"`, body)
			},
		},
		{
			name:   "EmptyBody",
			target: "/plot",
			body:   "",
			status: http.StatusBadRequest,
		},
		{
			name:   "NoBuild",
			target: "/plot",
			body:   "title: x\n",
			status: http.StatusBadRequest,
			check: func(t *testing.T, body string) {
				formErr := map[string]string{}
				require.NoError(t, json.Unmarshal([]byte(body), &formErr))
				assert.Equal(t, "formerror", formErr["reason"])
				assert.Equal(t, "build is required", formErr["build"])
			},
		},
		{
			name:   "InvalidBuild",
			target: "/plot",
			body:   "build: {fw: {thickness: -1}}\n",
			status: http.StatusBadRequest,
			check: func(t *testing.T, body string) {
				assert.Contains(t, body, "formerror")
			},
		},
		{
			name:   "UnknownFormat",
			target: "/plot?format=pdf",
			body:   plotBody,
			status: http.StatusBadRequest,
		},
	} {
		t.Run(tc.name, func(t *testing.T) { check(t, tc) })
	}
}

func TestModel(t *testing.T) {
	res := request(t, http.MethodPost, "/model", modelBody)
	require.Equal(t, http.StatusOK, res.status, res.body)

	body := modelResponse{}
	require.NoError(t, json.Unmarshal([]byte(res.body), &body))
	assert.Len(t, body.Files, 4)
	assert.Contains(t, body.Files["geometry.xml"], `region="-2 1"`)
	assert.Equal(t, []string{"plasma_cell", "fw", "vac_cell"}, body.Cells.Names())

	res = request(t, http.MethodPost, "/model?single_file=true", modelBody)
	require.Equal(t, http.StatusOK, res.status, res.body)
	body = modelResponse{}
	require.NoError(t, json.Unmarshal([]byte(res.body), &body))
	assert.Contains(t, body.Files, "model.xml")
}

func TestModelErrors(t *testing.T) {
	res := request(t, http.MethodPost, "/model", "major_rad: 1000\nbuild: {fw: {thickness: 4}}\n")
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Contains(t, res.body, "inline materials are required")

	unknown := strings.Replace(modelBody, "{RAFM: 1.0}", "{Tungsten: 1.0}", 1)
	res = request(t, http.MethodPost, "/model", unknown)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Contains(t, res.body, "no material name Tungsten was found in the library")
}

func TestParastell(t *testing.T) {
	res := request(t, http.MethodPost, "/parastell?phi=60&theta=90&title=Slice", parastellBody)
	require.Equal(t, http.StatusOK, res.status, res.body)
	assert.Contains(t, res.body, "<title>Slice</title>")
	assert.Contains(t, res.body, "fw: 4.0 cm")

	res = request(t, http.MethodPost, "/parastell?phi=30&theta=90", parastellBody)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Contains(t, res.body, "phi 30 is not in phi_list")

	res = request(t, http.MethodPost, "/parastell?theta=90", parastellBody)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Contains(t, res.body, "query parameter is required")
}

func TestRequestWrapperValidateSignature(t *testing.T) {
	valid := []interface{}{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context, in *struct{}) (string, error) { return "", nil },
	}
	for _, h := range valid {
		_, err := requestWrapperValidateSignature(h)
		assert.NoError(t, err)
	}

	invalid := []interface{}{
		nil,
		"not a function",
		func() error { return nil },
		func(ctx context.Context, in struct{}) error { return nil },
		func(ctx context.Context) string { return "" },
		func(ctx context.Context) (string, string, error) { return "", "", nil },
	}
	for _, h := range invalid {
		_, err := requestWrapperValidateSignature(h)
		assert.Error(t, err)
	}
}
