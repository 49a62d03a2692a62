// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"autohub/internal/models"
)

// VehiclesList returns the inventory, optionally filtered by ?status=
// and ?q= (matches make, model and version).
func (a *API) VehiclesList(w http.ResponseWriter, r *http.Request) {
	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidVehicleStatus(status) {
		writeError(w, http.StatusBadRequest, "unknown vehicle status")
		return
	}

	items, err := a.vehicles.List(d.ID, status, r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("list vehicles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, items)
}

// VehiclesGet returns one vehicle by ID.
func (a *API) VehiclesGet(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	v, err := a.vehicles.FindByID(id)
	if err != nil {
		slog.Error("find vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// VehiclesCreate adds a vehicle to the inventory.
func (a *API) VehiclesCreate(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if err := decodeJSON(w, r, &v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateVehicle(&v); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	v.DealershipID = d.ID
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}

	created, err := a.vehicles.Create(&v)
	if err != nil {
		slog.Error("create vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// VehiclesUpdate rewrites all mutable fields of a vehicle.
func (a *API) VehiclesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var v models.Vehicle
	if err := decodeJSON(w, r, &v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateVehicle(&v); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := a.vehicles.FindByID(id)
	if err != nil {
		slog.Error("find vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}

	v.ID = id
	if v.Status == "" {
		v.Status = existing.Status
	}
	if err := a.vehicles.Update(&v); err != nil {
		slog.Error("update vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	updated, err := a.vehicles.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// VehiclesUpdateStatus moves a vehicle to a new lifecycle state.
func (a *API) VehiclesUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidVehicleStatus(body.Status) {
		writeError(w, http.StatusBadRequest, "unknown vehicle status")
		return
	}

	if err := a.vehicles.UpdateStatus(id, body.Status); err != nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": body.Status})
}

// VehiclesDelete removes a vehicle and its stored photos.
func (a *API) VehiclesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	v, err := a.vehicles.FindByID(id)
	if err != nil {
		slog.Error("find vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}

	if err := a.vehicles.Delete(id); err != nil {
		slog.Error("delete vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Clean up S3 photos (best-effort, don't fail the request).
	if a.storageClient != nil {
		for _, imgURL := range v.Images {
			if key, ok := a.storageClient.ExtractS3Key(imgURL); ok {
				if err := a.storageClient.Delete(r.Context(), key); err != nil {
					slog.Warn("s3 photo delete failed", "error", err, "key", key)
				}
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
