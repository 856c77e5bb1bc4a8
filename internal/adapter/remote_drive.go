// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/utils"
	"github.com/MKhiriev/go-deck-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Google Drive v3 endpoints, relative to the configured address.
const (
	driveFilesPath      = "/drive/v3/files"
	driveFilePath       = "/drive/v3/files/{id}"
	driveUploadPath     = "/upload/drive/v3/files"
	driveUploadFilePath = "/upload/drive/v3/files/{id}"
)

type driveFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

type driveRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewDriveRemoteStore constructs a [RemoteStore] talking to the Google Drive
// v3 API at adapterCfg.DriveAddress. adapterCfg.AccessToken, when set, is
// used as the initial bearer token.
//
// Returns an error if the address is empty or cannot be parsed as a valid
// URL.
func NewDriveRemoteStore(adapterCfg config.Adapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.DriveAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid drive address: %w", err)
	}

	log := logger.WithComponent("remote_drive")
	d := &driveRemoteStore{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).WithLogging(log),
		logger: log,
	}
	d.SetToken(adapterCfg.AccessToken)

	return d, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (d *driveRemoteStore) SetToken(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.token = strings.TrimSpace(token)
}

func (d *driveRemoteStore) Token() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.token
}

func (d *driveRemoteStore) HasCredential() bool {
	return d.Token() != ""
}

// Write implements [RemoteStore].
//
// The object is looked up by exact name. A match gets its content replaced
// with PATCH /upload/drive/v3/files/{id}. Otherwise the content is uploaded
// with POST /upload/drive/v3/files and the new object is named with
// PATCH /drive/v3/files/{id}; if naming fails the object is deleted again
// and [ErrRenameFailed] is returned. A 404 on the update means the object
// was removed after the lookup, and it is created again. Any other non-2xx
// status aborts the write.
func (d *driveRemoteStore) Write(ctx context.Context, name string, payload any) error {
	if !d.HasCredential() {
		return ErrNoCredential
	}

	fileName := models.JSONFileName(name)
	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode remote payload: %w", err)
	}

	file, found, err := d.findFile(ctx, fileName)
	if err != nil {
		d.logger.Err(err).
			Str("func", "driveRemoteStore.Write").
			Str("name", fileName).
			Msg("remote lookup failed")
		return fmt.Errorf("lookup %s: %w", fileName, err)
	}

	if found {
		err = d.updateContent(ctx, file.ID, content)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrNotFound):
			// deleted between lookup and update
			d.logger.Warn().
				Err(err).
				Str("func", "driveRemoteStore.Write").
				Str("file_id", file.ID).
				Msg("remote object vanished, creating it again")
		default:
			d.logger.Err(err).
				Str("func", "driveRemoteStore.Write").
				Str("file_id", file.ID).
				Msg("remote update failed")
			return fmt.Errorf("update %s: %w", fileName, err)
		}
	}

	created, err := d.createFile(ctx, content)
	if err != nil {
		d.logger.Err(err).
			Str("func", "driveRemoteStore.Write").
			Str("name", fileName).
			Msg("remote create failed")
		return fmt.Errorf("create %s: %w", fileName, err)
	}

	if err = d.renameFile(ctx, created.ID, fileName); err != nil {
		d.logger.Err(err).
			Str("func", "driveRemoteStore.Write").
			Str("file_id", created.ID).
			Msg("remote rename failed, deleting created object")

		if delErr := d.deleteFile(ctx, created.ID); delErr != nil {
			d.logger.Warn().
				Err(delErr).
				Str("func", "driveRemoteStore.Write").
				Str("file_id", created.ID).
				Msg("failed to delete unnamed remote object")
		}
		return fmt.Errorf("%w: %s: %w", ErrRenameFailed, fileName, err)
	}

	return nil
}

// Read implements [RemoteStore]. A found object is fetched with
// GET /drive/v3/files/{id}?alt=media.
func (d *driveRemoteStore) Read(ctx context.Context, name string) (json.RawMessage, bool) {
	if !d.HasCredential() {
		d.logger.Debug().
			Str("func", "driveRemoteStore.Read").
			Msg("no access token, remote read skipped")
		return nil, false
	}

	fileName := models.JSONFileName(name)
	file, found, err := d.findFile(ctx, fileName)
	if err != nil {
		d.logger.Warn().
			Err(err).
			Str("func", "driveRemoteStore.Read").
			Str("name", fileName).
			Msg("remote lookup failed")
		return nil, false
	}
	if !found {
		return nil, false
	}

	resp, err := d.authedRequest(ctx).
		SetPathParam("id", file.ID).
		SetQueryParam("alt", "media").
		Get(driveFilePath)
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err != nil {
		d.logger.Warn().
			Err(err).
			Str("func", "driveRemoteStore.Read").
			Str("file_id", file.ID).
			Msg("remote download failed")
		return nil, false
	}

	body := resp.Body()
	if !json.Valid(body) {
		d.logger.Warn().
			Str("func", "driveRemoteStore.Read").
			Str("file_id", file.ID).
			Msg("remote content is not valid JSON, treating as missing")
		return nil, false
	}

	return json.RawMessage(body), true
}

func (d *driveRemoteStore) findFile(ctx context.Context, fileName string) (driveFile, bool, error) {
	resp, err := d.authedRequest(ctx).
		SetQueryParam("q", nameQuery(fileName)).
		SetQueryParam("fields", "files(id,name)").
		SetQueryParam("spaces", "drive").
		Get(driveFilesPath)
	if err != nil {
		return driveFile{}, false, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return driveFile{}, false, err
	}

	var list driveFileList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return driveFile{}, false, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	for _, f := range list.Files {
		if f.Name == fileName && f.ID != "" {
			return f, true, nil
		}
	}

	return driveFile{}, false, nil
}

func (d *driveRemoteStore) updateContent(ctx context.Context, id string, content []byte) error {
	resp, err := d.authedRequest(ctx).
		SetPathParam("id", id).
		SetQueryParam("uploadType", "media").
		SetHeader("Content-Type", "application/json").
		SetBody(content).
		Patch(driveUploadFilePath)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (d *driveRemoteStore) createFile(ctx context.Context, content []byte) (driveFile, error) {
	resp, err := d.authedRequest(ctx).
		SetQueryParam("uploadType", "media").
		SetHeader("Content-Type", "application/json").
		SetBody(content).
		Post(driveUploadPath)
	if err != nil {
		return driveFile{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return driveFile{}, err
	}

	var created driveFile
	if err = json.Unmarshal(resp.Body(), &created); err != nil || created.ID == "" {
		return driveFile{}, fmt.Errorf("%w: create returned no file id", ErrMalformedResponse)
	}

	return created, nil
}

func (d *driveRemoteStore) renameFile(ctx context.Context, id, fileName string) error {
	resp, err := d.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": fileName}).
		Patch(driveFilePath)
	if err != nil {
		return fmt.Errorf("rename request: %w", err)
	}

	return mapHTTPError(resp)
}

func (d *driveRemoteStore) deleteFile(ctx context.Context, id string) error {
	resp, err := d.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(driveFilePath)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (d *driveRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	return d.client.R().
		SetContext(ctx).
		SetAuthToken(d.Token())
}

// nameQuery builds the Drive search expression matching fileName exactly.
func nameQuery(fileName string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(fileName)
	return "name = '" + escaped + "' and trashed = false"
}
