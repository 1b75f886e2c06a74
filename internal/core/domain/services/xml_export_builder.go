package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// ErrMalformedLine is returned when a line lacks data the export format
// requires. Use errors.As with *MalformedLineError to identify the line.
var ErrMalformedLine = errors.New("line is malformed for export")

// MalformedLineError identifies the line and field that could not be
// serialized. No partial document is returned alongside it.
type MalformedLineError struct {
	LineNumber int
	Field      string
	Cause      error
}

// NewMalformedLineError creates a MalformedLineError for the given line and
// field.
func NewMalformedLineError(lineNumber int, field string, cause error) *MalformedLineError {
	return &MalformedLineError{LineNumber: lineNumber, Field: field, Cause: cause}
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d is malformed for export: %s (cause: %s)",
		e.LineNumber, e.Field, e.Cause)
}

// Unwrap allows errors.Is to match ErrMalformedLine.
func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

type exportDocument struct {
	XMLName        xml.Name         `xml:"purchaseOrder"`
	SequenceNumber int64            `xml:"sequenceNumber"`
	OrderNumber    string           `xml:"customerOrderNumber"`
	CustomerID     string           `xml:"customerId"`
	ShipTo         exportShipTo     `xml:"shipTo"`
	Carrier        string           `xml:"carrier"`
	ShipMethod     string           `xml:"shipMethod,omitempty"`
	Lines          []exportLineItem `xml:"lines>line"`
}

type exportShipTo struct {
	Line1      string `xml:"line1"`
	Line2      string `xml:"line2,omitempty"`
	Line3      string `xml:"line3,omitempty"`
	Line4      string `xml:"line4,omitempty"`
	City       string `xml:"city"`
	State      string `xml:"state"`
	PostalCode string `xml:"postalCode,omitempty"`
}

type exportLineItem struct {
	LineNumber    int    `xml:"lineNumber"`
	SKU           string `xml:"sku"`
	Quantity      int64  `xml:"quantity"`
	UnitOfMeasure string `xml:"unitOfMeasure"`
	Price         string `xml:"price"`
}

// XMLExportBuilder serializes a validated order into the purchase-order
// document consumed by the downstream ERP.
//
// The builder is deterministic: the same order snapshot produces a
// byte-identical document on every call. The document body carries no
// timestamps or generated identifiers; only the filename embeds the
// generation time. Field order inside the document is fixed by the struct
// layout above and must not change, since the consumer parses positionally.
//
// The builder does not re-validate. Callers run ExportValidator first; a
// skipped validation shows up downstream as a rejected document, not here.
type XMLExportBuilder struct{}

// NewXMLExportBuilder creates a new XMLExportBuilder instance.
func NewXMLExportBuilder() XMLExportBuilder {
	return XMLExportBuilder{}
}

// Build serializes the order's header and its active lines. Cancelled lines
// are excluded from the document but remain on the order.
//
// Quantity must parse as an integer and price as a decimal number; a line
// violating either fails the whole build with a *MalformedLineError and no
// document is returned.
func (b XMLExportBuilder) Build(o *order.Order) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	doc := exportDocument{
		OrderNumber: o.CustomerOrderNumber(),
		CustomerID:  o.CustomerID(),
		ShipTo: exportShipTo{
			Line1:      o.ShipTo().Line1,
			Line2:      o.ShipTo().Line2,
			Line3:      o.ShipTo().Line3,
			Line4:      o.ShipTo().Line4,
			City:       o.ShipTo().City,
			State:      o.ShipTo().State,
			PostalCode: o.ShipTo().PostalCode,
		},
	}
	if o.SequenceNumber() != nil {
		doc.SequenceNumber = *o.SequenceNumber()
	}
	if o.Carrier() != nil {
		doc.Carrier = *o.Carrier()
	}
	if o.ShipMethod() != nil {
		doc.ShipMethod = *o.ShipMethod()
	}

	for _, line := range o.ActiveLines() {
		item, err := b.buildLine(line)
		if err != nil {
			return "", err
		}
		doc.Lines = append(doc.Lines, item)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(body) + "\n", nil
}

// Filename returns the name under which the caller saves the document. The
// generation timestamp lives here and only here.
func (b XMLExportBuilder) Filename(o *order.Order, generatedAt time.Time) string {
	var sequenceNumber int64
	if o.SequenceNumber() != nil {
		sequenceNumber = *o.SequenceNumber()
	}
	return fmt.Sprintf("PO_%d_%s.xml", sequenceNumber, generatedAt.UTC().Format("20060102T150405Z"))
}

func (b XMLExportBuilder) buildLine(line *order.Line) (exportLineItem, error) {
	quantity, err := strconv.ParseInt(line.Quantity(), 10, 64)
	if err != nil {
		return exportLineItem{}, NewMalformedLineError(line.LineNumber(), "quantity", err)
	}

	price := line.CustomerPrice()
	if line.MappedPrice() != nil {
		price = *line.MappedPrice()
	}
	if _, err := strconv.ParseFloat(price, 64); err != nil {
		return exportLineItem{}, NewMalformedLineError(line.LineNumber(), "price", err)
	}

	sku := line.CustomerSKU()
	if line.MappedSKU() != nil {
		sku = *line.MappedSKU()
	}

	return exportLineItem{
		LineNumber:    line.LineNumber(),
		SKU:           sku,
		Quantity:      quantity,
		UnitOfMeasure: line.UnitOfMeasure(),
		Price:         price,
	}, nil
}
