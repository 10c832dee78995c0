package content

// Project is one entry in the project showcase.
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Icon        string   `yaml:"icon"`
	Image       string   `yaml:"image"`
	Repo        string   `yaml:"repo"`
}

// Service is one card in the "What I Do" section.
type Service struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Short string `yaml:"short"`
	Long  string `yaml:"long"`
}

// TechBadge is an icon and label in the tech scroller.
type TechBadge struct {
	Icon string `yaml:"icon"`
	Name string `yaml:"name"`
}

// Skill is a proficiency bar in the about section.
type Skill struct {
	Name    string `yaml:"name"`
	Percent int    `yaml:"percent"`
}

// TimelineEntry is one stop on the resume timeline.
type TimelineEntry struct {
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
	Org   string `yaml:"org"`
	Body  string `yaml:"body"`
}

// Stat is a headline number next to the about text.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Social is an outbound profile link.
type Social struct {
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// Profile describes the site owner.
type Profile struct {
	Name      string   `yaml:"name"`
	ShortName string   `yaml:"short_name"`
	Logo      string   `yaml:"logo"`
	Headline  string   `yaml:"headline"`
	Intro     string   `yaml:"intro"`
	Roles     []string `yaml:"roles"`
	Status    string   `yaml:"status"`
	About     string   `yaml:"about"`
	Tagline   string   `yaml:"tagline"`
	Location  string   `yaml:"location"`
	Phone     string   `yaml:"phone"`
	Email     string   `yaml:"email"`
	Resume    string   `yaml:"resume"`
	Photo     string   `yaml:"photo"`
	Stats     []Stat   `yaml:"stats"`
	Socials   []Social `yaml:"socials"`
	Expertise []string `yaml:"expertise"`
	Copyright string   `yaml:"copyright"`
}

// Catalog is the complete read-only content of the site.
type Catalog struct {
	Profile  Profile         `yaml:"profile"`
	Projects []Project       `yaml:"projects"`
	Services []Service       `yaml:"services"`
	Tech     []TechBadge     `yaml:"tech"`
	Skills   []Skill         `yaml:"skills"`
	Timeline []TimelineEntry `yaml:"timeline"`
}
