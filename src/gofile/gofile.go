// Package gofile uploads files to the Gofile hosting service: pick the best
// server, then POST the file as multipart form data.
package gofile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
)

const serversURL = "https://api.gofile.io/servers"

// Result reports an upload attempt.
type Result struct {
	OK     bool
	URL    string
	FileID string
	Err    error
}

var client = &http.Client{Timeout: 2 * time.Minute}

type serversResponse struct {
	Status string `json:"status"`
	Data   struct {
		Servers []struct {
			Name string `json:"name"`
		} `json:"servers"`
	} `json:"data"`
}

type uploadResponse struct {
	Status string `json:"status"`
	Data   struct {
		FileID       string `json:"fileId"`
		DownloadPage string `json:"downloadPage"`
	} `json:"data"`
}

func bestServer() (string, error) {
	resp, err := client.Get(serversURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var sr serversResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", err
	}
	if len(sr.Data.Servers) == 0 {
		return "", fmt.Errorf("gofile: no servers available")
	}
	return sr.Data.Servers[0].Name, nil
}

// Upload sends the file contents under fileName and returns the public
// download page.
func Upload(contents []byte, fileName string) Result {
	server, err := bestServer()
	if err != nil {
		return Result{Err: err}
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return Result{Err: err}
	}
	if _, err := part.Write(contents); err != nil {
		return Result{Err: err}
	}
	if config.GofileToken != "" {
		_ = w.WriteField("token", config.GofileToken)
	}
	if err := w.Close(); err != nil {
		return Result{Err: err}
	}

	url := fmt.Sprintf("https://%s.gofile.io/contents/uploadFile", server)
	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return Result{Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		txt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{Err: fmt.Errorf("gofile: upload failed: %d %s", resp.StatusCode, txt)}
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return Result{Err: err}
	}
	if ur.Status != "ok" || ur.Data.DownloadPage == "" {
		return Result{Err: fmt.Errorf("gofile: unexpected response status %q", ur.Status)}
	}
	return Result{OK: true, URL: ur.Data.DownloadPage, FileID: ur.Data.FileID}
}
