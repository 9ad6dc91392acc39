package models

import "encoding/json"

// TenantConfig is the tenant-wide site configuration returned by the
// platform. Replaced wholesale on every refetch.
type TenantConfig struct {
	PrimaryColor   string                 `json:"primaryColor,omitempty"`
	SecondaryColor string                 `json:"secondaryColor,omitempty"`
	FontFamily     string                 `json:"fontFamily,omitempty"`
	LogoURL        string                 `json:"logoUrl,omitempty"`
	FaviconURL     string                 `json:"faviconUrl,omitempty"`
	Template       string                 `json:"template,omitempty"`
	Pages          []string               `json:"pages,omitempty"`
	Extra          map[string]interface{} `json:"extra,omitempty"`
	CartCount      int                    `json:"cartCount,omitempty"`
}

// HotelRecord is the tenant's hotel entity.
type HotelRecord struct {
	Name         string         `json:"name"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	City         string         `json:"city,omitempty"`
	Zip          string         `json:"zip,omitempty"`
	Country      string         `json:"country,omitempty"`
	Descriptions LocalizedTexts `json:"descriptions,omitempty"`
	Rooms        []RoomNode     `json:"rooms,omitempty"`
}

// RoomNode is one entry of the hotel's room inventory.
type RoomNode struct {
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// LocalizedText is one description variant in a given language.
type LocalizedText struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// LocalizedTexts decodes either a plain string or an ordered list of
// {text, language} objects, both of which the platform emits.
type LocalizedTexts []LocalizedText

func (l *LocalizedTexts) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*l = LocalizedTexts{{Text: plain}}
		return nil
	}
	var list []LocalizedText
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// First returns the first description text, or "".
func (l LocalizedTexts) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Text
}
