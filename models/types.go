// Package models contain needed models
package models

import (
	"trithemius-backend/analysis"
	"trithemius-backend/crypto"
)

// CipherRequest represents the request for a single cipher operation
type CipherRequest struct {
	Text  string `json:"text" binding:"required"`
	Key   string `json:"key"`
	Shift int    `json:"shift" binding:"omitempty,min=1,max=31"`
}

// CipherResponse represents the response after a cipher operation
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Operation string `json:"operation,omitempty"`
	Result    string `json:"result,omitempty"`
}

// AlphabetResponse represents the keyed alphabet for a keyword
type AlphabetResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	Base    string `json:"base"`
	Keyed   string `json:"keyed"`
}

// OperationInfo describes one registered operation
type OperationInfo struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Inverse     string `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

// OperationsResponse lists the registered operations
type OperationsResponse struct {
	Success    bool            `json:"success"`
	Operations []OperationInfo `json:"operations"`
}

// PipelineRequest represents a chain of operations applied to one text.
// With Reverse set the inverse chain is run instead.
type PipelineRequest struct {
	Text    string        `json:"text" binding:"required"`
	Steps   []crypto.Step `json:"steps" binding:"required,min=1"`
	Reverse bool          `json:"reverse"`
}

// PipelineResponse represents the response after a pipeline run
type PipelineResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Steps   []crypto.Step `json:"steps,omitempty"`
	Result  string        `json:"result,omitempty"`
}

// AnalyzeRequest selects the inputs of the property report; every field is optional
type AnalyzeRequest struct {
	Symbol    string  `json:"symbol"`
	Text      string  `json:"text"`
	Modified  string  `json:"modified"`
	Key       string  `json:"key"`
	OrderText string  `json:"order_text"`
	FirstKey  string  `json:"first_key"`
	SecondKey string  `json:"second_key"`
	Threshold float64 `json:"threshold" binding:"omitempty,min=0,max=1"`
}

// NewOperationInfo describes op for listings
func NewOperationInfo(op crypto.Operation) OperationInfo {
	inverse, _ := op.Inverse()
	return OperationInfo{
		Name:        op.Name(),
		Type:        string(op.Type()),
		Description: op.Description(),
		Inverse:     inverse,
	}
}

// AnalyzeResponse carries the cryptosystem property report
type AnalyzeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Report  *analysis.Report `json:"report,omitempty"`
}
