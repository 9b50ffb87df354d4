package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDefaults populates the localization collections on first boot so
// a fresh database serves a working UI. Existing documents are left
// untouched; only missing languages are inserted.
func SeedDefaults(ctx context.Context, db *mongo.Database) error {
	langs := db.Collection(languagesCollection)
	trans := db.Collection(translationsCollection)
	terms := db.Collection(termsCollection)

	n, err := langs.CountDocuments(ctx, map[string]any{})
	if err != nil {
		return fmt.Errorf("seed: count languages: %w", err)
	}
	if n > 0 {
		return nil
	}

	languageDocs := []any{
		mongoLanguage{Code: "en", Name: "English", Flag: "/flags/gb.png", Order: 1},
		mongoLanguage{Code: "sv", Name: "Svenska", Flag: "/flags/se.png", Order: 2},
	}
	if _, err := langs.InsertMany(ctx, languageDocs); err != nil {
		return fmt.Errorf("seed: insert languages: %w", err)
	}

	tableDocs := []any{
		mongoTranslationTable{Language: "en", Messages: englishMessages},
		mongoTranslationTable{Language: "sv", Messages: swedishMessages},
	}
	if _, err := trans.InsertMany(ctx, tableDocs); err != nil {
		return fmt.Errorf("seed: insert translations: %w", err)
	}

	termsDocs := []any{
		mongoTerms{
			Language:             "en",
			Introduction:         "By using our invoicing services you agree to the terms below.",
			Services:             "We provide invoicing, price-list management and related tooling for small businesses.",
			UserResponsibilities: "You are responsible for the accuracy of the data you enter and for keeping your credentials safe.",
			Payments:             "Subscription fees are billed monthly in advance and are non-refundable.",
			Liability:            "The service is provided as-is; we are not liable for indirect or consequential damages.",
			Termination:          "Either party may terminate the agreement at the end of a billing period.",
			Changes:              "We may update these terms; material changes are announced in the application.",
			Contact:              "Questions about these terms can be sent to support@123fakturera.se.",
		},
		mongoTerms{
			Language:             "sv",
			Introduction:         "Genom att använda våra faktureringstjänster godkänner du villkoren nedan.",
			Services:             "Vi tillhandahåller fakturering, prislistehantering och relaterade verktyg för småföretag.",
			UserResponsibilities: "Du ansvarar för att uppgifterna du anger är korrekta och för att skydda dina inloggningsuppgifter.",
			Payments:             "Abonnemangsavgifter faktureras månadsvis i förskott och återbetalas inte.",
			Liability:            "Tjänsten tillhandahålls i befintligt skick; vi ansvarar inte för indirekta skador.",
			Termination:          "Båda parter kan säga upp avtalet vid slutet av en faktureringsperiod.",
			Changes:              "Vi kan uppdatera dessa villkor; väsentliga ändringar meddelas i applikationen.",
			Contact:              "Frågor om dessa villkor kan skickas till support@123fakturera.se.",
		},
	}
	if _, err := terms.InsertMany(ctx, termsDocs); err != nil {
		return fmt.Errorf("seed: insert terms: %w", err)
	}

	return nil
}

var englishMessages = map[string]string{
	"login.title":                           "Log in",
	"login.button":                          "Log in",
	"login.loading":                         "Logging in...",
	"login.email_label":                     "Email",
	"login.email_placeholder":               "Enter your email",
	"login.password_label":                  "Password",
	"login.password_placeholder":            "Enter your password",
	"login.accept_terms_1":                  "I accept the",
	"login.terms_link":                      "terms",
	"login.error_required_email":            "Email is required",
	"login.error_required_password":         "Password is required",
	"login.error_required_terms":            "You must accept the terms",
	"login.error_min_password":              "Password must be at least 6 characters",
	"login.error_invalid":                   "Wrong email or password",
	"login.error_exists":                    "An account with this email already exists",
	"login.error_server":                    "Something went wrong, please try again",
	"login.error_session":                   "Your session is no longer valid, please log in again",
	"login.error_expired":                   "Your session has expired, please log in again",
	"error.network":                         "Cannot reach the server, check your connection",
	"pricelist.title":                       "Price list",
	"pricelist.button_add":                  "New product",
	"pricelist.button_edit":                 "Edit product",
	"pricelist.button_print":                "Print list",
	"pricelist.column_articleNo":            "Article no.",
	"pricelist.column_productService":       "Product / Service",
	"pricelist.column_inPrice":              "In price",
	"pricelist.column_price":                "Price",
	"pricelist.column_unit":                 "Unit",
	"pricelist.column_inStock":              "In stock",
	"pricelist.column_description":          "Description",
	"pricelist.confirm_delete":              "Delete item",
	"pricelist.error_required_articleNo":    "Article number is required",
	"pricelist.error_required_productService": "Product name is required",
	"pricelist.error_invalid_number":        "Enter a valid number",
	"pricelist.error_not_found":             "No products found",
	"pricelist.error_fetch":                 "Could not load the price list",
	"pricelist.error_server":                "Could not save the product",
	"pricelist.error_duplicate":             "An item with this article number already exists",
	"terms.closeAndGoBack":                  "Close and go back",
}

var swedishMessages = map[string]string{
	"login.title":                           "Logga in",
	"login.button":                          "Logga in",
	"login.loading":                         "Loggar in...",
	"login.email_label":                     "E-post",
	"login.email_placeholder":               "Ange din e-post",
	"login.password_label":                  "Lösenord",
	"login.password_placeholder":            "Ange ditt lösenord",
	"login.accept_terms_1":                  "Jag godkänner",
	"login.terms_link":                      "villkoren",
	"login.error_required_email":            "E-post krävs",
	"login.error_required_password":         "Lösenord krävs",
	"login.error_required_terms":            "Du måste godkänna villkoren",
	"login.error_min_password":              "Lösenordet måste vara minst 6 tecken",
	"login.error_invalid":                   "Fel e-post eller lösenord",
	"login.error_exists":                    "Ett konto med denna e-post finns redan",
	"login.error_server":                    "Något gick fel, försök igen",
	"login.error_session":                   "Din session är inte längre giltig, logga in igen",
	"login.error_expired":                   "Din session har gått ut, logga in igen",
	"error.network":                         "Kan inte nå servern, kontrollera din anslutning",
	"pricelist.title":                       "Prislista",
	"pricelist.button_add":                  "Ny produkt",
	"pricelist.button_edit":                 "Redigera produkt",
	"pricelist.button_print":                "Skriv ut lista",
	"pricelist.column_articleNo":            "Artikelnr",
	"pricelist.column_productService":       "Produkt / Tjänst",
	"pricelist.column_inPrice":              "Inpris",
	"pricelist.column_price":                "Pris",
	"pricelist.column_unit":                 "Enhet",
	"pricelist.column_inStock":              "I lager",
	"pricelist.column_description":          "Beskrivning",
	"pricelist.confirm_delete":              "Ta bort artikel",
	"pricelist.error_required_articleNo":    "Artikelnummer krävs",
	"pricelist.error_required_productService": "Produktnamn krävs",
	"pricelist.error_invalid_number":        "Ange ett giltigt tal",
	"pricelist.error_not_found":             "Inga produkter hittades",
	"pricelist.error_fetch":                 "Kunde inte läsa in prislistan",
	"pricelist.error_server":                "Kunde inte spara produkten",
	"pricelist.error_duplicate":             "En artikel med detta artikelnummer finns redan",
	"terms.closeAndGoBack":                  "Stäng och gå tillbaka",
}
