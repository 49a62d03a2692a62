package handlers

import (
	"strings"
	"time"
	"unicode/utf8"

	"autohub/internal/models"
)

// Validation limits for API inputs.
const (
	maxNameLen          = 200
	maxPhoneLen         = 40
	maxEmailLen         = 254
	maxNotesLen         = 5_000
	maxDescriptionLen   = 10_000
	maxContractTitleLen = 300
	maxContractBodyLen  = 100_000
)

// validateVehicle checks vehicle inputs and returns the first error found.
func validateVehicle(v *models.Vehicle) string {
	if strings.TrimSpace(v.Make) == "" {
		return "Make is required."
	}
	if strings.TrimSpace(v.Model) == "" {
		return "Model is required."
	}
	currentYear := time.Now().Year()
	if v.YearManufacture != 0 && (v.YearManufacture < 1900 || v.YearManufacture > currentYear+1) {
		return "Year of manufacture is out of range."
	}
	if v.YearModel != 0 && (v.YearModel < 1900 || v.YearModel > currentYear+2) {
		return "Model year is out of range."
	}
	if v.SellingPrice.Sign() < 0 || v.PurchasePrice.Sign() < 0 || v.FipePrice.Sign() < 0 {
		return "Prices cannot be negative."
	}
	if v.Mileage < 0 {
		return "Mileage cannot be negative."
	}
	if v.Status != "" && !models.ValidVehicleStatus(v.Status) {
		return "Unknown vehicle status."
	}
	if utf8.RuneCountInString(v.Description) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	return ""
}

// validateLead checks lead inputs and returns the first error found.
func validateLead(l *models.Lead) string {
	if strings.TrimSpace(l.Name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(l.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(l.Phone) > maxPhoneLen {
		return "Phone is too long (max 40 characters)."
	}
	if utf8.RuneCountInString(l.Email) > maxEmailLen {
		return "Email is too long."
	}
	if utf8.RuneCountInString(l.Notes) > maxNotesLen {
		return "Notes are too long (max 5,000 characters)."
	}
	return ""
}

// validateTransaction checks ledger entry inputs.
func validateTransaction(t *models.Transaction) string {
	if strings.TrimSpace(t.Description) == "" {
		return "Description is required."
	}
	if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
		return "Type must be income or expense."
	}
	if t.Amount.Sign() <= 0 {
		return "Amount must be positive."
	}
	if t.Status != "" && t.Status != models.TransactionPending && t.Status != models.TransactionCompleted {
		return "Unknown transaction status."
	}
	return ""
}

// validateContractTemplate checks contract template inputs.
func validateContractTemplate(title, content string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxContractTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxContractBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}
