package views

import "time"

const schemaContext = "https://schema.org"

type organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	URL  string       `json:"url,omitempty"`
	Logo *imageObject `json:"logo,omitempty"`
}

type imageObject struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type webPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type webSite struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type techArticle struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Keywords         string       `json:"keywords"`
	URL              string       `json:"url"`
	Image            string       `json:"image"`
	Author           organization `json:"author"`
	Publisher        organization `json:"publisher"`
	MainEntityOfPage webPage      `json:"mainEntityOfPage"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	InLanguage       string       `json:"inLanguage"`
	IsPartOf         webSite      `json:"isPartOf"`
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []listItem `json:"itemListElement"`
}

type offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Description   string `json:"description"`
}

type softwareApplication struct {
	Context             string       `json:"@context"`
	Type                string       `json:"@type"`
	Name                string       `json:"name"`
	ApplicationCategory string       `json:"applicationCategory"`
	OperatingSystem     string       `json:"operatingSystem"`
	Description         string       `json:"description"`
	URL                 string       `json:"url"`
	Documentation       string       `json:"documentation"`
	Offers              offer        `json:"offers"`
	FeatureList         []string     `json:"featureList"`
	Author              organization `json:"author"`
}

// newTechArticle describes the page itself.
func newTechArticle(site Site, v pageView, modified time.Time) techArticle {
	return techArticle{
		Context:     schemaContext,
		Type:        "TechArticle",
		Headline:    v.Title,
		Description: v.Description,
		Keywords:    v.Keywords,
		URL:         v.URL,
		Image:       site.ImageURL,
		Author:      organization{Type: "Organization", Name: site.Name, URL: site.HomeURL},
		Publisher: organization{
			Type: "Organization",
			Name: site.Name,
			URL:  site.HomeURL,
			Logo: &imageObject{Type: "ImageObject", URL: site.LogoURL, Width: 200, Height: 60},
		},
		MainEntityOfPage: webPage{Type: "WebPage", ID: v.URL},
		DatePublished:    site.Published.UTC().Format(time.RFC3339),
		DateModified:     modified.Format(time.RFC3339),
		InLanguage:       "en-US",
		IsPartOf:         webSite{Type: "WebSite", Name: site.Title, URL: site.RootURL()},
	}
}

// newBreadcrumb names the last crumb after the document heading,
// not the curated title.
func newBreadcrumb(site Site, heading, pageURL string) breadcrumbList {
	return breadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []listItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: site.HomeURL},
			{Type: "ListItem", Position: 2, Name: "Documentation", Item: site.RootURL()},
			{Type: "ListItem", Position: 3, Name: heading, Item: pageURL},
		},
	}
}

func newSoftwareApplication(site Site) softwareApplication {
	return softwareApplication{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                site.Name + " API",
		ApplicationCategory: "DeveloperApplication",
		OperatingSystem:     "Any",
		Description:         "RESTful API for vulnerability scanning and CVE database queries. Scan websites, detect technologies, manage bulk scans, and access comprehensive security intelligence.",
		URL:                 site.HomeURL,
		Documentation:       site.RootURL(),
		Offers: offer{
			Type:          "Offer",
			Price:         "0",
			PriceCurrency: "USD",
			Description:   "Free tier available with 3 scans per day. Pro tier offers 20 scans per day with bulk scanning for $9/month.",
		},
		FeatureList: []string{
			"Website vulnerability scanning",
			"Bulk scan mode (20 URLs simultaneously)",
			"CVE database access",
			"Technology detection",
			"REST API integration",
			"JSON exports",
			"Email monitoring",
			"Exploit database access",
		},
		Author: organization{Type: "Organization", Name: site.Name},
	}
}
