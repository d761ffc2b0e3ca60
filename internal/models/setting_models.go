package models

// Settings is the user preferences document. It is persisted as a single JSON
// value in the local settings store and merged over DefaultSettings on read,
// so documents written by older versions keep sane values for new fields.
type Settings struct {
	Profile       ProfileSettings      `json:"profile" mapstructure:"profile"`
	Notifications NotificationSettings `json:"notifications" mapstructure:"notifications"`
	Data          DataSettings         `json:"data" mapstructure:"data"`
	Security      SecuritySettings     `json:"security" mapstructure:"security"`
	Appearance    AppearanceSettings   `json:"appearance" mapstructure:"appearance"`
}

type ProfileSettings struct {
	FirstName       string `json:"firstName" mapstructure:"firstName"`
	LastName        string `json:"lastName" mapstructure:"lastName"`
	Email           string `json:"email" mapstructure:"email"`
	Phone           string `json:"phone" mapstructure:"phone"`
	BusinessName    string `json:"businessName" mapstructure:"businessName"`
	BusinessType    string `json:"businessType" mapstructure:"businessType"`
	BusinessAddress string `json:"businessAddress" mapstructure:"businessAddress"`
	TaxID           string `json:"taxId" mapstructure:"taxId"`
}

type NotificationSettings struct {
	Email  EmailNotificationSettings  `json:"email" mapstructure:"email"`
	Push   PushNotificationSettings   `json:"push" mapstructure:"push"`
	System SystemNotificationSettings `json:"system" mapstructure:"system"`
}

type EmailNotificationSettings struct {
	OrderUpdates     bool `json:"orderUpdates" mapstructure:"orderUpdates"`
	LowStock         bool `json:"lowStock" mapstructure:"lowStock"`
	WeeklyReports    bool `json:"weeklyReports" mapstructure:"weeklyReports"`
	CustomerMessages bool `json:"customerMessages" mapstructure:"customerMessages"`
	SystemAlerts     bool `json:"systemAlerts" mapstructure:"systemAlerts"`
}

type PushNotificationSettings struct {
	OrderUpdates     bool `json:"orderUpdates" mapstructure:"orderUpdates"`
	LowStock         bool `json:"lowStock" mapstructure:"lowStock"`
	CustomerMessages bool `json:"customerMessages" mapstructure:"customerMessages"`
	SystemAlerts     bool `json:"systemAlerts" mapstructure:"systemAlerts"`
}

type SystemNotificationSettings struct {
	SoundEnabled         bool   `json:"soundEnabled" mapstructure:"soundEnabled"`
	DesktopNotifications bool   `json:"desktopNotifications" mapstructure:"desktopNotifications"`
	EmailDigest          string `json:"emailDigest" mapstructure:"emailDigest"`
}

type DataSettings struct {
	AutoBackup      bool   `json:"autoBackup" mapstructure:"autoBackup"`
	BackupFrequency string `json:"backupFrequency" mapstructure:"backupFrequency"`
	DataRetention   string `json:"dataRetention" mapstructure:"dataRetention"`
	ExportFormat    string `json:"exportFormat" mapstructure:"exportFormat"`
	SyncEnabled     bool   `json:"syncEnabled" mapstructure:"syncEnabled"`
}

type SecuritySettings struct {
	TwoFactorEnabled   bool `json:"twoFactorEnabled" mapstructure:"twoFactorEnabled"`
	SessionTimeout     int  `json:"sessionTimeout" mapstructure:"sessionTimeout"`
	PasswordExpiry     int  `json:"passwordExpiry" mapstructure:"passwordExpiry"`
	LoginNotifications bool `json:"loginNotifications" mapstructure:"loginNotifications"`
	IPWhitelist        bool `json:"ipWhitelist" mapstructure:"ipWhitelist"`
}

type AppearanceSettings struct {
	Theme          string `json:"theme" mapstructure:"theme"`
	Language       string `json:"language" mapstructure:"language"`
	Timezone       string `json:"timezone" mapstructure:"timezone"`
	DateFormat     string `json:"dateFormat" mapstructure:"dateFormat"`
	Currency       string `json:"currency" mapstructure:"currency"`
	CompactMode    bool   `json:"compactMode" mapstructure:"compactMode"`
	ShowAnimations bool   `json:"showAnimations" mapstructure:"showAnimations"`
}

// DefaultSettings returns the documented defaults merged under any stored
// settings document.
func DefaultSettings() Settings {
	return Settings{
		Profile: ProfileSettings{
			FirstName:       "John",
			LastName:        "Doe",
			Email:           "john.doe@dishooom.com",
			Phone:           "+1 (555) 123-4567",
			BusinessName:    "Dishooom",
			BusinessType:    "Chemical Product Manufacturing",
			BusinessAddress: "123 Business St, City, State 12345",
			TaxID:           "TX123456789",
		},
		Notifications: NotificationSettings{
			Email: EmailNotificationSettings{
				OrderUpdates:     true,
				LowStock:         true,
				WeeklyReports:    false,
				CustomerMessages: true,
				SystemAlerts:     true,
			},
			Push: PushNotificationSettings{
				OrderUpdates:     false,
				LowStock:         true,
				CustomerMessages: false,
				SystemAlerts:     true,
			},
			System: SystemNotificationSettings{
				SoundEnabled:         true,
				DesktopNotifications: false,
				EmailDigest:          "weekly",
			},
		},
		Data: DataSettings{
			AutoBackup:      true,
			BackupFrequency: "weekly",
			DataRetention:   "1year",
			ExportFormat:    "csv",
			SyncEnabled:     false,
		},
		Security: SecuritySettings{
			TwoFactorEnabled:   false,
			SessionTimeout:     30,
			PasswordExpiry:     90,
			LoginNotifications: true,
			IPWhitelist:        false,
		},
		Appearance: AppearanceSettings{
			Theme:          "light",
			Language:       "en",
			Timezone:       "America/New_York",
			DateFormat:     "MM/DD/YYYY",
			Currency:       "USD",
			CompactMode:    false,
			ShowAnimations: true,
		},
	}
}
