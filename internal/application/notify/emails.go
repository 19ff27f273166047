package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// Email content mirrors the platform's Norwegian notification templates.

func requestCreatedEmail(ev RequestCreatedEvent, baseURL string) (subject, body string) {
	r := ev.Request
	var b strings.Builder
	b.WriteString("<h2>Ny fraktforespørsel</h2>")
	b.WriteString("<p>En ny fraktforespørsel er tilgjengelig på DGM Logistikk:</p>")
	b.WriteString(`<div style="border: 1px solid #ddd; padding: 16px; margin: 16px 0;">`)
	fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(r.CargoType))
	fmt.Fprintf(&b, "<p><strong>Fra:</strong> %s</p>", html.EscapeString(r.PickupLocation))
	fmt.Fprintf(&b, "<p><strong>Til:</strong> %s</p>", html.EscapeString(r.DeliveryLocation))
	fmt.Fprintf(&b, "<p><strong>Vekt:</strong> %s kg</p>", r.Weight.String())
	fmt.Fprintf(&b, "<p><strong>Antall kolli:</strong> %d</p>", r.NumberOfItems)
	if r.SpecialNeeds != "" {
		fmt.Fprintf(&b, "<p><strong>Spesielle behov:</strong> %s</p>", html.EscapeString(r.SpecialNeeds))
	}
	fmt.Fprintf(&b, "<p><strong>Firma:</strong> %s</p>", html.EscapeString(ev.CompanyName))
	b.WriteString("</div>")
	fmt.Fprintf(&b, `<p><a href="%s/foresporsler">Se forespørsel</a></p>`, baseURL)
	return "Ny fraktforespørsel tilgjengelig", b.String()
}

func companyApprovedEmail(ev CompanyApprovedEvent, baseURL string) (subject, body string) {
	var b strings.Builder
	b.WriteString("<h2>Gratulerer!</h2>")
	fmt.Fprintf(&b, "<p>Ditt firma <strong>%s</strong> har blitt godkjent på DGM Logistikk.</p>",
		html.EscapeString(ev.Company.Name))
	b.WriteString("<p>Du kan nå begynne å bruke alle funksjonene på plattformen.</p>")
	fmt.Fprintf(&b, `<p><a href="%s">Gå til plattformen</a></p>`, baseURL)
	return "Ditt firma er godkjent!", b.String()
}

func weeklyStatsEmail(counts repository.WeeklyCounts, baseURL string) (subject, body string) {
	var b strings.Builder
	b.WriteString("<h2>Ukentlig statistikk</h2>")
	b.WriteString("<p>Her er en oversikt over aktiviteten den siste uken:</p>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li><strong>Nye forespørsler:</strong> %d</li>", counts.NewRequests)
	fmt.Fprintf(&b, "<li><strong>Nye firmaer:</strong> %d</li>", counts.NewCompanies)
	fmt.Fprintf(&b, "<li><strong>Nye brukere:</strong> %d</li>", counts.NewUsers)
	b.WriteString("</ul>")
	fmt.Fprintf(&b, `<p><a href="%s/admin">Gå til admin panel</a></p>`, baseURL)
	return "Ukentlig statistikk - DGM Logistikk", b.String()
}
