package entities

// GuildConfig represents per-guild feature configuration.
// Each section is independently optional: a nil pointer field means
// "unconfigured", never an error. Rows are created implicitly on first access.
type GuildConfig struct {
	GuildID      int64
	Points       PointsConfig
	Presensi     PresensiConfig
	Sholat       SholatConfig
	Achievements AchievementsConfig
}

// PointsConfig holds the points/rewards module settings.
type PointsConfig struct {
	Enabled         bool
	LogsChannelID   *int64  // Nullable - channel for point transaction logs
	ThanksChannelID *int64  // Nullable - channel where thanks are posted
	ManagerRoleID   *int64  // Nullable - role allowed to run /setup (NULL = admins only)
	CuratorUserID   *int64  // Nullable - designated curator user
	WelcomeMessage  *string // Nullable - custom welcome text for the thanks channel
}

// PresensiConfig holds the attendance module settings.
type PresensiConfig struct {
	ChannelID *int64 // Nullable - channel where attendance is taken
	RoleID    *int64 // Nullable - role granted on attendance
}

// SholatConfig holds the prayer-time module settings.
type SholatConfig struct {
	ChannelID      *int64  // Nullable - channel for prayer-time announcements
	ReminderRoleID *int64  // Nullable - role pinged at prayer times
	City           *string // Nullable - city used for the prayer schedule
}

// AchievementsConfig holds the achievements module settings.
type AchievementsConfig struct {
	Enabled           bool
	AnnounceChannelID *int64 // Nullable - channel for achievement announcements
}

// ReadyToEnable checks whether the points module has the channels it needs
// before it can be switched on.
func (p *PointsConfig) ReadyToEnable() bool {
	return p.HasLogsChannel() && p.HasThanksChannel()
}

// HasLogsChannel checks if a logs channel is configured
func (p *PointsConfig) HasLogsChannel() bool {
	return p.LogsChannelID != nil && *p.LogsChannelID > 0
}

// HasThanksChannel checks if a thanks channel is configured
func (p *PointsConfig) HasThanksChannel() bool {
	return p.ThanksChannelID != nil && *p.ThanksChannelID > 0
}

// HasManagerRole checks if a manager role is configured
func (p *PointsConfig) HasManagerRole() bool {
	return p.ManagerRoleID != nil && *p.ManagerRoleID > 0
}

// HasCurator checks if a curator user is configured
func (p *PointsConfig) HasCurator() bool {
	return p.CuratorUserID != nil && *p.CuratorUserID > 0
}

// HasWelcomeMessage checks if a custom welcome message is configured
func (p *PointsConfig) HasWelcomeMessage() bool {
	return p.WelcomeMessage != nil && *p.WelcomeMessage != ""
}

// HasChannel checks if an attendance channel is configured
func (p *PresensiConfig) HasChannel() bool {
	return p.ChannelID != nil && *p.ChannelID > 0
}

// HasRole checks if an attendance role is configured
func (p *PresensiConfig) HasRole() bool {
	return p.RoleID != nil && *p.RoleID > 0
}

// HasChannel checks if an announcement channel is configured
func (s *SholatConfig) HasChannel() bool {
	return s.ChannelID != nil && *s.ChannelID > 0
}

// HasReminderRole checks if a reminder role is configured
func (s *SholatConfig) HasReminderRole() bool {
	return s.ReminderRoleID != nil && *s.ReminderRoleID > 0
}

// HasCity checks if a city is configured
func (s *SholatConfig) HasCity() bool {
	return s.City != nil && *s.City != ""
}

// HasAnnounceChannel checks if an announcement channel is configured
func (a *AchievementsConfig) HasAnnounceChannel() bool {
	return a.AnnounceChannelID != nil && *a.AnnounceChannelID > 0
}
