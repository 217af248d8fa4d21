package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Options mirrors the option block the conversion service forwards to
// wkhtmltopdf. Field names follow that tool's flag names.
type Options struct {
	Encoding     string `json:"encoding"`
	PageSize     string `json:"page-size"`
	Orientation  string `json:"orientation"`
	MarginTop    string `json:"margin-top"`
	MarginBottom string `json:"margin-bottom"`
	MarginLeft   string `json:"margin-left"`
	MarginRight  string `json:"margin-right"`
}

func DefaultOptions() Options {
	return Options{
		Encoding:     "UTF-8",
		PageSize:     "A4",
		Orientation:  "Portrait",
		MarginTop:    "0.75in",
		MarginBottom: "0.75in",
		MarginLeft:   "0.75in",
		MarginRight:  "0.75in",
	}
}

// HTTPConverter calls an external HTML-to-PDF conversion service.
type HTTPConverter struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPConverter(baseURL string) *HTTPConverter {
	return &HTTPConverter{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type convertRequest struct {
	HTML    string  `json:"html"`
	Options Options `json:"options"`
}

func (c *HTTPConverter) Convert(ctx context.Context, html string, opts Options) ([]byte, error) {
	body, err := json.Marshal(convertRequest{HTML: html, Options: opts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/convert", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render: conversion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("render: converter returned status %d: %s", resp.StatusCode, msg)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render: converter returned an empty document")
	}
	return pdf, nil
}
