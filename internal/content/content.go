package content

// Image is one gallery record. Records are immutable once loaded.
type Image struct {
	ID       int    `yaml:"id" validate:"gt=0"`
	Source   string `yaml:"source" validate:"required,uri"`
	Caption  string `yaml:"caption" validate:"required"`
	Category string `yaml:"category" validate:"required"`
}

// Service is a recurring meeting listed in the services panel.
type Service struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Day         string `yaml:"day" validate:"required"`
	Time        string `yaml:"time" validate:"required"`
	Location    string `yaml:"location" validate:"required"`
}

// About holds the mission and vision statements. Both are markdown.
type About struct {
	Mission string `yaml:"mission"`
	Vision  string `yaml:"vision"`
}

// Contact is shown at the bottom of the about panel.
type Contact struct {
	Address string   `yaml:"address"`
	Phone   string   `yaml:"phone"`
	Email   string   `yaml:"email" validate:"omitempty,email"`
	Social  []string `yaml:"social" validate:"dive,required"`
}

// Gallery is the fixed image list plus the label used for the "all" filter.
type Gallery struct {
	AllLabel string  `yaml:"all_label"`
	Images   []Image `yaml:"images" validate:"unique=ID,dive"`
}

// Site is everything the landing page renders.
type Site struct {
	Title    string    `yaml:"title" validate:"required"`
	Subtitle string    `yaml:"subtitle"`
	Place    string    `yaml:"place"`
	Tagline  string    `yaml:"tagline"`
	Services []Service `yaml:"services" validate:"dive"`
	About    About     `yaml:"about"`
	Contact  Contact   `yaml:"contact"`
	Gallery  Gallery   `yaml:"gallery"`
}

const defaultAllLabel = "Todos"

// Images returns a copy of the gallery records in their defined order.
func (s Site) Images() []Image {
	if len(s.Gallery.Images) == 0 {
		return nil
	}
	out := make([]Image, len(s.Gallery.Images))
	copy(out, s.Gallery.Images)
	return out
}

// AllLabel is the caption for the unfiltered gallery view.
func (s Site) AllLabel() string {
	if s.Gallery.AllLabel == "" {
		return defaultAllLabel
	}
	return s.Gallery.AllLabel
}
