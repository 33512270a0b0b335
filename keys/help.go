package keys

import "sort"

// HelpCategory organizes commands by function
type HelpCategory string

const (
	HelpCategoryPages      HelpCategory = "Pages"
	HelpCategoryCommands   HelpCategory = "Commands"
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
)

// categoryOrder is the display order of help sections.
var categoryOrder = map[HelpCategory]int{
	HelpCategoryPages:      1,
	HelpCategoryCommands:   2,
	HelpCategoryNavigation: 3,
	HelpCategoryOther:      4,
	HelpCategoryUncategory: 5,
}

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	KeyLanding:  {Description: "Show the landing page and FAQ", Category: HelpCategoryPages},
	KeyCommands: {Description: "Show the commands reference", Category: HelpCategoryPages},
	KeyTheme:    {Description: "Toggle light/dark for this session", Category: HelpCategoryPages},

	KeySearch:       {Description: "Focus the search box (also ctrl+k)", Category: HelpCategoryCommands},
	KeyNextCategory: {Description: "Select the next category with results", Category: HelpCategoryCommands},
	KeyPrevCategory: {Description: "Select the previous category with results", Category: HelpCategoryCommands},
	KeyCopy:         {Description: "Copy the selected command name", Category: HelpCategoryCommands},
	KeyEnter:        {Description: "Open/close the focused question, or copy the selected command", Category: HelpCategoryCommands},

	KeyUp:       {Description: "Previous card or question", Category: HelpCategoryNavigation},
	KeyDown:     {Description: "Next card or question", Category: HelpCategoryNavigation},
	KeyPageUp:   {Description: "Scroll up a page", Category: HelpCategoryNavigation},
	KeyPageDown: {Description: "Scroll down a page", Category: HelpCategoryNavigation},
	KeyTop:      {Description: "Scroll back to the top", Category: HelpCategoryNavigation},

	KeyEsc:  {Description: "Leave the search box or close help", Category: HelpCategoryOther},
	KeyHelp: {Description: "Show help screen", Category: HelpCategoryOther},
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		// Return default help for unknown keys
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns the key bindings in a category in declaration
// order.
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAllCategories returns all categories that have at least one key, in
// display order.
func GetAllCategories() []HelpCategory {
	categoryMap := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		categoryMap[info.Category] = true
	}

	categories := make([]HelpCategory, 0, len(categoryMap))
	for category := range categoryMap {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categoryOrder[categories[i]] < categoryOrder[categories[j]]
	})
	return categories
}
