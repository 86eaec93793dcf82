package adapters

// metadataFolder describes how a Metadata API format folder maps to a
// package.xml type.
type metadataFolder struct {
	Type string
	// Bundle types store one member per subdirectory.
	Bundle bool
	// InFolder types store members below user folders and are listed as
	// "Folder/Member".
	InFolder bool
	// KeepExtension keeps the file extension in the member name.
	KeepExtension bool
}

var metadataFolders = map[string]metadataFolder{
	"applications":          {Type: "CustomApplication"},
	"appMenus":              {Type: "AppMenu"},
	"approvalProcesses":     {Type: "ApprovalProcess"},
	"assignmentRules":       {Type: "AssignmentRules"},
	"aura":                  {Type: "AuraDefinitionBundle", Bundle: true},
	"autoResponseRules":     {Type: "AutoResponseRules"},
	"cachePartitions":       {Type: "PlatformCachePartition"},
	"certs":                 {Type: "Certificate"},
	"classes":               {Type: "ApexClass"},
	"communities":           {Type: "Community"},
	"components":            {Type: "ApexComponent"},
	"connectedApps":         {Type: "ConnectedApp"},
	"contentassets":         {Type: "ContentAsset"},
	"corsWhitelistOrigins":  {Type: "CorsWhitelistOrigin"},
	"cspTrustedSites":       {Type: "CspTrustedSite"},
	"customMetadata":        {Type: "CustomMetadata"},
	"customPermissions":     {Type: "CustomPermission"},
	"dashboards":            {Type: "Dashboard", InFolder: true},
	"documents":             {Type: "Document", InFolder: true, KeepExtension: true},
	"duplicateRules":        {Type: "DuplicateRule"},
	"email":                 {Type: "EmailTemplate", InFolder: true},
	"escalationRules":       {Type: "EscalationRules"},
	"experiences":           {Type: "ExperienceBundle", Bundle: true},
	"flexipages":            {Type: "FlexiPage"},
	"flowDefinitions":       {Type: "FlowDefinition"},
	"flows":                 {Type: "Flow"},
	"globalValueSets":       {Type: "GlobalValueSet"},
	"groups":                {Type: "Group"},
	"homePageLayouts":       {Type: "HomePageLayout"},
	"installedPackages":     {Type: "InstalledPackage"},
	"labels":                {Type: "CustomLabels"},
	"layouts":               {Type: "Layout"},
	"letterhead":            {Type: "Letterhead"},
	"lwc":                   {Type: "LightningComponentBundle", Bundle: true},
	"matchingRules":         {Type: "MatchingRules"},
	"messageChannels":       {Type: "LightningMessageChannel"},
	"namedCredentials":      {Type: "NamedCredential"},
	"notificationtypes":     {Type: "CustomNotificationType"},
	"objects":               {Type: "CustomObject"},
	"objectTranslations":    {Type: "CustomObjectTranslation"},
	"pages":                 {Type: "ApexPage"},
	"pathAssistants":        {Type: "PathAssistant"},
	"permissionsetgroups":   {Type: "PermissionSetGroup"},
	"permissionsets":        {Type: "PermissionSet"},
	"platformEventChannels": {Type: "PlatformEventChannel"},
	"profiles":              {Type: "Profile"},
	"queues":                {Type: "Queue"},
	"quickActions":          {Type: "QuickAction"},
	"remoteSiteSettings":    {Type: "RemoteSiteSetting"},
	"reports":               {Type: "Report", InFolder: true},
	"reportTypes":           {Type: "ReportType"},
	"roles":                 {Type: "Role"},
	"settings":              {Type: "Settings"},
	"sharingRules":          {Type: "SharingRules"},
	"sites":                 {Type: "CustomSite"},
	"standardValueSets":     {Type: "StandardValueSet"},
	"staticresources":       {Type: "StaticResource"},
	"tabs":                  {Type: "CustomTab"},
	"translations":          {Type: "Translations"},
	"triggers":              {Type: "ApexTrigger"},
	"waveTemplates":         {Type: "WaveTemplateBundle", Bundle: true},
	"workflows":             {Type: "Workflow"},
}
