package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLink is an entry in the footer's social links list.
type SocialLink struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Icon string `bson:"icon" json:"icon"`
}

// SiteSettings is the site-wide configuration document. The settings
// collection holds at most one of these, by convention rather than schema.
type SiteSettings struct {
	ID                           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SiteName                     string             `bson:"siteName" json:"siteName"`
	LogoURL                      string             `bson:"logoUrl" json:"logoUrl"`
	IconURL                      string             `bson:"iconUrl" json:"iconUrl"`
	PrimaryColor                 string             `bson:"primaryColor" json:"primaryColor"`
	SecondaryColor               string             `bson:"secondaryColor" json:"secondaryColor"`
	FontFamily                   string             `bson:"fontFamily" json:"fontFamily"`
	GeneralTextColor             string             `bson:"generalTextColor" json:"generalTextColor"`
	PageBackgroundColor          string             `bson:"pageBackgroundColor" json:"pageBackgroundColor"`
	GeneralBackgroundColor       string             `bson:"generalBackgroundColor" json:"generalBackgroundColor"`
	HeaderBackgroundColor        string             `bson:"headerBackgroundColor" json:"headerBackgroundColor"`
	FooterBackgroundColor        string             `bson:"footerBackgroundColor" json:"footerBackgroundColor"`
	HomepageTitle                string             `bson:"homepageTitle" json:"homepageTitle"`
	CatalogPageTitle             string             `bson:"catalogPageTitle" json:"catalogPageTitle"`
	HomepageFeaturedSectionTitle string             `bson:"homepageFeaturedSectionTitle" json:"homepageFeaturedSectionTitle"`
	HomepageAboutUsTitle         string             `bson:"homepageAboutUsTitle" json:"homepageAboutUsTitle"`
	HomepageAboutUsText          string             `bson:"homepageAboutUsText" json:"homepageAboutUsText"`
	AboutUsImageURL              string             `bson:"aboutUsImageUrl" json:"aboutUsImageUrl"`
	MailingListImageURL          string             `bson:"mailingListImageUrl" json:"mailingListImageUrl"`
	HomepageMailingListTitle     string             `bson:"homepageMailingListTitle" json:"homepageMailingListTitle"`
	SocialLinks                  []SocialLink       `bson:"socialLinks" json:"socialLinks"`
	CreatedAt                    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the settings document created lazily on first read.
func DefaultSettings() SiteSettings {
	now := time.Now().UTC()
	return SiteSettings{
		SiteName:                     "Sensen Games",
		LogoURL:                      "/public/images/logo.jpg",
		IconURL:                      "/public/images/icon.png",
		PrimaryColor:                 "#3B82F6",
		SecondaryColor:               "#10B981",
		FontFamily:                   "sans-serif",
		GeneralTextColor:             "#333333",
		PageBackgroundColor:          "#ffffff",
		GeneralBackgroundColor:       "#f0f0f0",
		HeaderBackgroundColor:        "#ffffff",
		FooterBackgroundColor:        "#ffffff",
		HomepageTitle:                "Experimente a próxima geração de jogos",
		CatalogPageTitle:             "Nosso Catálogo de Jogos Incríveis",
		HomepageFeaturedSectionTitle: "TÍTULOS EM DESTAQUE",
		HomepageAboutUsTitle:         "ALIMENTANDO AVENTURA E IMAGINAÇÃO",
		HomepageAboutUsText:          "Somos dois irmãos que jogam juntos desde as eras do Super Nintendo e PlayStation 1 & 2. Jogávamos as séries Megaman X, Castlevania SotN, Super Metroid, Aero Fighters, Guitar Hero e outros clássicos o dia todo naquela época! Depois de alguns anos trabalhando como programador web e web designer, decidimos começar a fazer jogos no estilo que amamos jogar: desafiadores e divertidos!",
		HomepageMailingListTitle:     "ENTRE PARA NOSSA LISTA DE E-MAILS",
		SocialLinks: []SocialLink{
			{Name: "Facebook", URL: "https://fb.com/sensengames", Icon: "FaFacebook"},
			{Name: "Twitter", URL: "https://x.com/sensengames", Icon: "FaTwitter"},
			{Name: "Instagram", URL: "https://instagram.com/sensengames", Icon: "FaInstagram"},
			{Name: "Steam", URL: "https://store.steampowered.com/developer/sensengames", Icon: "FaSteam"},
			{Name: "Bluesky", URL: "https://bsky.app/profile/sensengames.com", Icon: "BlueskyIcon"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
