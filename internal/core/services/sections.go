package services

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/layout"
)

// Printed text that tests and readers look for.
const (
	NoNewDamageText     = "No new damage recorded at delivery"
	NoCarriedDamageText = "No damage recorded at collection"
	NoNotesText         = "None recorded"
	ConfirmationText    = "I confirm the vehicle has been received in the condition recorded in this report."
)

const (
	dateFormat = "02 Jan 2006 15:04 MST"
	noValue    = "-"
)

// numbers formats readings with thousands separators.
var numbers = message.NewPrinter(language.BritishEnglish)

// signatures holds the decoded signature images of both stages.
type signatures struct {
	collectionCustomer *domain.SignatureImage
	collectionDriver   *domain.SignatureImage
	deliveryCustomer   *domain.SignatureImage
	deliveryDriver     *domain.SignatureImage
}

// reportData is everything the section list is built from.
type reportData struct {
	job        domain.JobMeta
	collection *domain.InspectionSnapshot
	delivery   *domain.InspectionSnapshot
	result     domain.ComparisonResult
	settings   domain.ReportSettings
	reference  string
	signatures signatures
}

// buildReport returns the page chrome and the body sections in their
// fixed order: summary, checklists, fuel and charge, acknowledgment,
// damage, disclaimer, signatures. Header and footer are the chrome.
func buildReport(d reportData) (layout.Chrome, []layout.Section) {
	chrome := layout.Chrome{
		Header: &layout.Header{Data: layout.HeaderData{
			Company:      d.settings.Company.Name,
			Title:        d.settings.Title,
			JobNumber:    d.job.JobNumber,
			Registration: d.job.Registration,
			Reference:    d.reference,
			GeneratedAt:  formatTime(d.job.GeneratedAt),
		}},
		Footer: &layout.Footer{
			RegistrationLine: d.settings.Company.RegistrationLine,
			Contact:          []string{d.settings.Company.Address, d.settings.Company.Phone, d.settings.Company.Email},
		},
	}

	var sections []layout.Section
	sections = append(sections, summarySection(d))
	sections = append(sections, checklistSections(d)...)
	sections = append(sections, readingsSection(d))
	sections = append(sections, acknowledgmentSections(d)...)
	sections = append(sections, damageSections(d)...)
	sections = append(sections,
		&layout.Disclaimer{Title: "Terms and declaration", Text: d.settings.Disclaimer},
		signatureSection("Collection sign-off", d.collection, d.job.DriverName, d.signatures.collectionCustomer, d.signatures.collectionDriver),
		signatureSection("Delivery sign-off", d.delivery, d.job.DriverName, d.signatures.deliveryCustomer, d.signatures.deliveryDriver),
	)
	return chrome, sections
}

func summarySection(d reportData) layout.Section {
	return &layout.Summary{
		Title: "Job and vehicle",
		Left: []layout.Field{
			{Label: "Job number", Value: d.job.JobNumber},
			{Label: "Registration", Value: d.job.Registration},
			{Label: "Vehicle", Value: orDash(d.job.Vehicle())},
			{Label: "Colour", Value: orDash(d.job.Colour)},
			{Label: "VIN", Value: orDash(d.job.VIN)},
			{Label: "Driver", Value: orDash(d.job.DriverName)},
		},
		Right: []layout.Field{
			{Label: "Collected from", Value: orDash(d.job.CollectionAddress)},
			{Label: "Delivered to", Value: orDash(d.job.DeliveryAddress)},
			{Label: "Collected at", Value: formatTime(d.collection.CapturedAt)},
			{Label: "Delivered at", Value: formatTime(d.delivery.CapturedAt)},
			{Label: "Released by", Value: orDash(d.collection.CustomerName)},
			{Label: "Received by", Value: orDash(d.delivery.CustomerName)},
		},
	}
}

func checklistSections(d reportData) []layout.Section {
	docs := &layout.Checklist{Title: "Documents", ItemHeading: "Document"}
	for _, kind := range domain.DocumentKinds {
		before, _ := d.collection.Document(kind)
		after, _ := d.delivery.Document(kind)
		docs.Rows = append(docs.Rows, layout.ChecklistRow{
			Label:      kind.Label(),
			Collection: d.collection.DocumentStatus(kind) == domain.StatusProvided,
			Delivery:   d.delivery.DocumentStatus(kind) == domain.StatusProvided,
			Note:       stageNotes(missingReason(before), missingReason(after)),
		})
	}

	wheels := &layout.Checklist{Title: "Wheels and tyres", ItemHeading: "Wheel (no scuffs, tyre OK)"}
	for _, pos := range domain.WheelPositions {
		before, okBefore := d.collection.Wheel(pos)
		after, okAfter := d.delivery.Wheel(pos)
		wheels.Rows = append(wheels.Rows, layout.ChecklistRow{
			Label:      pos.Label(),
			Collection: okBefore && wheelClean(before),
			Delivery:   okAfter && wheelClean(after),
			Note:       stageNotes(wheelNote(before, okBefore), wheelNote(after, okAfter)),
		})
	}

	sections := []layout.Section{docs, wheels}
	if d.result.HasDocumentChanges() {
		changes := &layout.ChangeList{Title: "Document changes"}
		for _, c := range d.result.DocumentStatusChanges {
			changes.Lines = append(changes.Lines, fmt.Sprintf("%s: %s at collection, %s at delivery",
				c.Document.Label(), strings.ToLower(c.Before.Label()), strings.ToLower(c.After.Label())))
		}
		sections = append(sections, changes)
	}
	return sections
}

func missingReason(c domain.DocumentCheck) string {
	if c.ReasonIfMissing == nil {
		return ""
	}
	return *c.ReasonIfMissing
}

func wheelClean(w domain.WheelTyreCheck) bool {
	return !w.Scuffed && w.TyreCondition == domain.TyreOK
}

func wheelNote(w domain.WheelTyreCheck, ok bool) string {
	if !ok {
		return "not recorded"
	}
	var parts []string
	if w.Scuffed {
		parts = append(parts, "scuffed")
	}
	if w.TyreCondition != domain.TyreOK {
		parts = append(parts, strings.ToLower(w.TyreCondition.Label())+" tyre")
	}
	return strings.Join(parts, ", ")
}

// stageNotes joins per-stage notes, omitting empty ones.
func stageNotes(collection, delivery string) string {
	var parts []string
	if collection != "" {
		parts = append(parts, "Collection: "+collection)
	}
	if delivery != "" {
		parts = append(parts, "Delivery: "+delivery)
	}
	return strings.Join(parts, "; ")
}

func readingsSection(d reportData) layout.Section {
	before, after := d.collection.Condition, d.delivery.Condition
	table := &layout.ReadingsTable{Rows: []layout.ReadingRow{
		{
			Label:      "Mileage",
			Collection: numbers.Sprintf("%d", before.Mileage),
			Delivery:   numbers.Sprintf("%d", after.Mileage),
			Difference: numbers.Sprintf("%+d", d.result.MileageDelta),
		},
		{
			Label:      "Fuel",
			Collection: domain.FuelLabel(before.FuelLevelEighths),
			Delivery:   domain.FuelLabel(after.FuelLevelEighths),
			Difference: domain.FuelDeltaLabel(d.result.FuelDelta),
		},
	}}

	children := []layout.Section{
		table,
		fuelGroup("Fuel at collection", before.FuelLevelEighths),
		fuelGroup("Fuel at delivery", after.FuelLevelEighths),
	}
	if d.result.HasCharge() {
		children = append(children,
			chargeGroup("Charge at collection", d.result.ChargeBefore),
			chargeGroup("Charge at delivery", d.result.ChargeAfter),
		)
	}
	if d.collection.Weather != nil || d.delivery.Weather != nil {
		children = append(children,
			weatherGroup("Weather at collection", d.collection.Weather),
			weatherGroup("Weather at delivery", d.delivery.Weather),
		)
	}
	return layout.NewPanel("fuel-charge", "Fuel, charge and mileage", children...)
}

func fuelGroup(label string, eighths int) *layout.RadioGroup {
	g := &layout.RadioGroup{Label: label, Selected: -1}
	for i := 0; i <= domain.MaxFuelEighths; i++ {
		g.Options = append(g.Options, domain.FuelLabel(i))
	}
	if eighths >= 0 && eighths <= domain.MaxFuelEighths {
		g.Selected = eighths
	}
	return g
}

func chargeGroup(label string, level *domain.ChargeLevel) *layout.RadioGroup {
	g := &layout.RadioGroup{Label: label, Selected: -1}
	for i, c := range domain.ChargeLevels {
		g.Options = append(g.Options, c.Label())
		if level != nil && *level == c {
			g.Selected = i
		}
	}
	return g
}

func weatherGroup(label string, w *domain.Weather) *layout.RadioGroup {
	g := &layout.RadioGroup{Label: label, Selected: -1}
	for i, c := range domain.WeatherConditions {
		g.Options = append(g.Options, c.Label())
		if w != nil && *w == c {
			g.Selected = i
		}
	}
	return g
}

// acknowledgmentSections returns the key handover box followed by the
// inspection notes of both stages.
func acknowledgmentSections(d reportData) []layout.Section {
	return []layout.Section{
		&layout.Acknowledgment{
			KeysCollected: d.collection.KeyCountLabel(),
			KeysDelivered: d.delivery.KeyCountLabel(),
			Statement:     ConfirmationText,
			Confirmed:     d.delivery.ConfirmedByCustomer,
		},
		&layout.Note{Key: "notes-collection", Label: "Collection notes", Text: d.collection.Notes, Empty: NoNotesText},
		&layout.Note{Key: "notes-delivery", Label: "Delivery notes", Text: d.delivery.Notes, Empty: NoNotesText},
	}
}

// damageSections numbers carried damage first, then new damage, and
// keeps each group heading on the same page as its first entry.
func damageSections(d reportData) []layout.Section {
	carried, fresh := d.result.CarriedDamage, d.result.NewDamage

	views := make([]layout.MapView, len(domain.Views))
	viewIndex := make(map[domain.View]int, len(domain.Views))
	for i, v := range domain.Views {
		views[i] = layout.MapView{Label: v.Label()}
		viewIndex[v] = i
	}

	var carriedItems, newItems []layout.DamageItem
	n := 0
	for _, group := range []struct {
		markers []domain.DamageMarker
		isNew   bool
		items   *[]layout.DamageItem
	}{
		{carried, false, &carriedItems},
		{fresh, true, &newItems},
	} {
		for _, m := range group.markers {
			n++
			*group.items = append(*group.items, damageItem(n, m, group.isNew))
			if i, ok := viewIndex[m.View]; ok {
				views[i].Markers = append(views[i].Markers, layout.MapMarker{
					Number: n, X: m.Position.X, Y: m.Position.Y, New: group.isNew,
				})
			}
		}
	}

	summary := fmt.Sprintf("Total damage recorded: %d (%d carried from collection, %d new at delivery)",
		d.result.DamageCountTotal, len(carried), len(fresh))

	sections := []layout.Section{
		layout.NewPanel("damage-overview", "Damage", &layout.DamageMap{Views: views}, &layout.TextLine{Text: summary, Bold: true}),
	}
	sections = append(sections, damageGroup("damage-carried", "Carried over from collection", false, carriedItems, NoCarriedDamageText)...)
	sections = append(sections, damageGroup("damage-new", "New damage at delivery", true, newItems, NoNewDamageText)...)
	return sections
}

func damageGroup(name, heading string, isNew bool, items []layout.DamageItem, emptyText string) []layout.Section {
	head := &layout.DamageHeading{Text: fmt.Sprintf("%s (%d)", heading, len(items)), New: isNew}
	if len(items) == 0 {
		return []layout.Section{layout.NewPanel(name, "", head, &layout.DamageBanner{Text: emptyText})}
	}
	sections := []layout.Section{layout.NewPanel(name, "", head, &layout.DamageEntry{Item: items[0]})}
	for _, it := range items[1:] {
		sections = append(sections, &layout.DamageEntry{Item: it})
	}
	return sections
}

func damageItem(n int, m domain.DamageMarker, isNew bool) layout.DamageItem {
	note := m.Description
	if note == "" {
		note = "No description"
	}
	return layout.DamageItem{
		Number:   n,
		Location: fmt.Sprintf("%s (%.0f%%, %.0f%%)", m.View.Label(), m.Position.X, m.Position.Y),
		Kind:     m.Type.Label(),
		Size:     strings.ToLower(m.Size.Label()),
		Note:     note,
		Photos:   len(m.PhotoRefs),
		New:      isNew,
	}
}

func signatureSection(title string, s *domain.InspectionSnapshot, driver string, customer, company *domain.SignatureImage) layout.Section {
	date := formatTime(s.CapturedAt)
	return &layout.SignatureBlock{
		Title: title,
		Left:  layout.SignatureParty{Role: "Customer", Name: s.CustomerName, Date: date, Image: customer},
		Right: layout.SignatureParty{Role: "Company representative", Name: driver, Date: date, Image: company},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return noValue
	}
	return t.Format(dateFormat)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return noValue
	}
	return s
}
