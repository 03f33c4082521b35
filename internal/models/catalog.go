// internal/models/catalog.go
package models

// SectionID identifies a section of the exhibitor profile. The set is closed;
// see AllSectionIDs.
type SectionID string

const (
	SectionLogo               SectionID = "logo"
	SectionCoverImage         SectionID = "cover_image"
	SectionCompanyDescription SectionID = "company_description"
	SectionShortPitch         SectionID = "short_pitch"
	SectionProductCategories  SectionID = "product_categories"
	SectionKeywords           SectionID = "keywords"
	SectionProducts           SectionID = "products"
	SectionWebsite            SectionID = "website"
	SectionContactEmail       SectionID = "contact_email"
	SectionContactPhone       SectionID = "contact_phone"
	SectionAddress            SectionID = "address"
	SectionContactPerson      SectionID = "contact_person"
	SectionSponsoredCategory  SectionID = "sponsored_category"
	SectionSocialMedia        SectionID = "social_media"
	SectionVideos             SectionID = "videos"
	SectionDocuments          SectionID = "documents"
	SectionTradeFairNews      SectionID = "trade_fair_news"
	SectionJobOffers          SectionID = "job_offers"
	SectionAwards             SectionID = "awards"
)

// AllSectionIDs returns every known section id in catalog order.
func AllSectionIDs() []SectionID {
	return []SectionID{
		SectionLogo,
		SectionCoverImage,
		SectionCompanyDescription,
		SectionShortPitch,
		SectionProductCategories,
		SectionKeywords,
		SectionProducts,
		SectionWebsite,
		SectionContactEmail,
		SectionContactPhone,
		SectionAddress,
		SectionContactPerson,
		SectionSponsoredCategory,
		SectionSocialMedia,
		SectionVideos,
		SectionDocuments,
		SectionTradeFairNews,
		SectionJobOffers,
		SectionAwards,
	}
}

var knownSectionIDs = func() map[SectionID]bool {
	m := make(map[SectionID]bool)
	for _, id := range AllSectionIDs() {
		m[id] = true
	}
	return m
}()

func (id SectionID) IsKnown() bool {
	return knownSectionIDs[id]
}

func (id SectionID) String() string {
	return string(id)
}

// SectionKind describes how a section's value is entered and judged.
type SectionKind string

const (
	KindText       SectionKind = "text"
	KindList       SectionKind = "list"
	KindMultiField SectionKind = "multi_field"
	// KindProducts sections are complete when the exhibitor has products,
	// independent of any locale value.
	KindProducts SectionKind = "products"
)

var ValidSectionKinds = map[SectionKind]bool{
	KindText:       true,
	KindList:       true,
	KindMultiField: true,
	KindProducts:   true,
}

// SectionDefinition is one catalog entry.
type SectionDefinition struct {
	ID        SectionID    `json:"id"`
	Name      string       `json:"name"`
	Group     SectionGroup `json:"group"`
	Kind      SectionKind  `json:"kind"`
	Mandatory bool         `json:"mandatory"`
	GoldOnly  bool         `json:"goldOnly,omitempty"`
	// Fields names the positional entries of a multi-field section.
	Fields []string `json:"fields,omitempty"`
}

// Catalog is the ordered list of section definitions profiles are built from.
type Catalog []SectionDefinition

// Lookup finds the definition for id.
func (c Catalog) Lookup(id SectionID) (SectionDefinition, bool) {
	for _, d := range c {
		if d.ID == id {
			return d, true
		}
	}
	return SectionDefinition{}, false
}

// DefaultCatalog returns the built-in exhibitor profile catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: SectionLogo, Name: "Logo", Group: GroupA, Kind: KindText, Mandatory: true},
		{ID: SectionCoverImage, Name: "Cover image", Group: GroupA, Kind: KindText},
		{ID: SectionCompanyDescription, Name: "Company description", Group: GroupA, Kind: KindText, Mandatory: true},
		{ID: SectionShortPitch, Name: "Short pitch", Group: GroupA, Kind: KindText},
		{ID: SectionProductCategories, Name: "Product categories", Group: GroupA, Kind: KindList, Mandatory: true},
		{ID: SectionKeywords, Name: "Keywords", Group: GroupA, Kind: KindList},
		{ID: SectionProducts, Name: "Products", Group: GroupA, Kind: KindProducts},
		{ID: SectionWebsite, Name: "Website", Group: GroupA, Kind: KindText},
		{ID: SectionContactEmail, Name: "Contact email", Group: GroupA, Kind: KindText, Mandatory: true},
		{ID: SectionContactPhone, Name: "Contact phone", Group: GroupA, Kind: KindText},
		{ID: SectionAddress, Name: "Address", Group: GroupA, Kind: KindText},
		{ID: SectionContactPerson, Name: "Contact person", Group: GroupA, Kind: KindMultiField, Fields: []string{"name", "role", "email"}},
		{ID: SectionSponsoredCategory, Name: "Sponsored category", Group: GroupA, Kind: KindText, GoldOnly: true},
		{ID: SectionSocialMedia, Name: "Social media", Group: GroupB, Kind: KindList},
		{ID: SectionVideos, Name: "Videos", Group: GroupB, Kind: KindList},
		{ID: SectionDocuments, Name: "Documents", Group: GroupB, Kind: KindList},
		{ID: SectionTradeFairNews, Name: "Trade fair news", Group: GroupB, Kind: KindText},
		{ID: SectionJobOffers, Name: "Job offers", Group: GroupB, Kind: KindText},
		{ID: SectionAwards, Name: "Awards", Group: GroupB, Kind: KindList},
	}
}
