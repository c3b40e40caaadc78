// internal/decision/pip/descriptors.go
package pip

import "tribunal-workers/internal/decision"

// The PIP descriptor scoring table, transcribed from the statutory schedule.
// Point values are authoritative domain data and must not be re-derived.
var descriptors = decision.DescriptorTable{
	"preparingFood": {
		"a": {Letter: "a", Points: 0, Text: "Can prepare and cook a simple meal unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to either prepare or cook a simple meal."},
		"c": {Letter: "c", Points: 2, Text: "Cannot cook a simple meal using a conventional cooker but is able to do so using a microwave."},
		"d": {Letter: "d", Points: 2, Text: "Needs prompting to be able to either prepare or cook a simple meal."},
		"e": {Letter: "e", Points: 4, Text: "Needs supervision or assistance to either prepare or cook a simple meal."},
		"f": {Letter: "f", Points: 8, Text: "Cannot prepare and cook food."},
	},
	"takingNutrition": {
		"a": {Letter: "a", Points: 0, Text: "Can take nutrition unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to take nutrition."},
		"c": {Letter: "c", Points: 2, Text: "Needs a therapeutic source to be able to take nutrition."},
		"d": {Letter: "d", Points: 4, Text: "Needs prompting to be able to take nutrition."},
		"e": {Letter: "e", Points: 6, Text: "Needs assistance to be able to manage a therapeutic source to take nutrition."},
		"f": {Letter: "f", Points: 10, Text: "Cannot convey food and drink to their mouth and needs another person to do so."},
	},
	"managingTherapy": {
		"a": {Letter: "a", Points: 0, Text: "Either does not receive medication or therapy or does not need to monitor a health condition, or can manage medication or therapy or monitor a health condition unaided."},
		"b": {Letter: "b", Points: 1, Text: "Needs any one or more of the following: to use an aid or appliance, supervision, prompting or assistance to be able to manage medication or monitor a health condition."},
		"c": {Letter: "c", Points: 2, Text: "Needs supervision, prompting or assistance to be able to manage therapy that takes no more than 3.5 hours a week."},
		"d": {Letter: "d", Points: 4, Text: "Needs supervision, prompting or assistance to be able to manage therapy that takes more than 3.5 but no more than 7 hours a week."},
		"e": {Letter: "e", Points: 6, Text: "Needs supervision, prompting or assistance to be able to manage therapy that takes more than 7 but no more than 14 hours a week."},
		"f": {Letter: "f", Points: 8, Text: "Needs supervision, prompting or assistance to be able to manage therapy that takes more than 14 hours a week."},
	},
	"washingAndBathing": {
		"a": {Letter: "a", Points: 0, Text: "Can wash and bathe unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to wash or bathe."},
		"c": {Letter: "c", Points: 2, Text: "Needs supervision or prompting to be able to wash or bathe."},
		"d": {Letter: "d", Points: 2, Text: "Needs assistance to be able to wash either their hair or body below the waist."},
		"e": {Letter: "e", Points: 3, Text: "Needs assistance to be able to get in or out of a bath or shower."},
		"f": {Letter: "f", Points: 4, Text: "Needs assistance to be able to wash their body between the shoulders and waist."},
		"g": {Letter: "g", Points: 8, Text: "Cannot wash and bathe at all and needs another person to wash their entire body."},
	},
	"managingToiletNeeds": {
		"a": {Letter: "a", Points: 0, Text: "Can manage toilet needs or incontinence unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to manage toilet needs or incontinence."},
		"c": {Letter: "c", Points: 2, Text: "Needs supervision or prompting to be able to manage toilet needs."},
		"d": {Letter: "d", Points: 4, Text: "Needs assistance to be able to manage toilet needs."},
		"e": {Letter: "e", Points: 6, Text: "Needs assistance to be able to manage incontinence of either bladder or bowel."},
		"f": {Letter: "f", Points: 8, Text: "Needs assistance to be able to manage incontinence of both bladder and bowel."},
	},
	"dressingAndUndressing": {
		"a": {Letter: "a", Points: 0, Text: "Can dress and undress unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to dress or undress."},
		"c": {Letter: "c", Points: 2, Text: "Needs either prompting to be able to dress, undress or determine appropriate circumstances for remaining clothed, or prompting or assistance to be able to select appropriate clothing."},
		"d": {Letter: "d", Points: 2, Text: "Needs assistance to be able to dress or undress their lower body."},
		"e": {Letter: "e", Points: 4, Text: "Needs assistance to be able to dress or undress their upper body."},
		"f": {Letter: "f", Points: 8, Text: "Cannot dress or undress at all."},
	},
	"communicating": {
		"a": {Letter: "a", Points: 0, Text: "Can express and understand verbal information unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance to be able to speak or hear."},
		"c": {Letter: "c", Points: 4, Text: "Needs communication support to be able to express or understand complex verbal information."},
		"d": {Letter: "d", Points: 8, Text: "Needs communication support to be able to express or understand basic verbal information."},
		"e": {Letter: "e", Points: 12, Text: "Cannot express or understand verbal information at all even with communication support."},
	},
	"readingUnderstanding": {
		"a": {Letter: "a", Points: 0, Text: "Can read and understand basic and complex written information either unaided or using spectacles or contact lenses."},
		"b": {Letter: "b", Points: 2, Text: "Needs to use an aid or appliance, other than spectacles or contact lenses, to be able to read or understand either basic or complex written information."},
		"c": {Letter: "c", Points: 2, Text: "Needs prompting to be able to read or understand complex written information."},
		"d": {Letter: "d", Points: 4, Text: "Needs prompting to be able to read or understand basic written information."},
		"e": {Letter: "e", Points: 8, Text: "Cannot read or understand signs, symbols or words at all."},
	},
	"engagingWithOthers": {
		"a": {Letter: "a", Points: 0, Text: "Can engage with other people unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs prompting to be able to engage with other people."},
		"c": {Letter: "c", Points: 4, Text: "Needs social support to be able to engage with other people."},
		"d": {Letter: "d", Points: 8, Text: "Cannot engage with other people due to such engagement causing either overwhelming psychological distress to the claimant, or the claimant to exhibit behaviour which would result in a substantial risk of harm to the claimant or another person."},
	},
	"budgetingDecisions": {
		"a": {Letter: "a", Points: 0, Text: "Can manage complex budgeting decisions unaided."},
		"b": {Letter: "b", Points: 2, Text: "Needs prompting or assistance to be able to make complex budgeting decisions."},
		"c": {Letter: "c", Points: 4, Text: "Needs prompting or assistance to be able to make simple budgeting decisions."},
		"d": {Letter: "d", Points: 6, Text: "Cannot make any budgeting decisions at all."},
	},
	"planningAndFollowing": {
		"a": {Letter: "a", Points: 0, Text: "Can plan and follow the route of a journey unaided."},
		"b": {Letter: "b", Points: 4, Text: "Needs prompting to be able to undertake any journey to avoid overwhelming psychological distress to the claimant."},
		"c": {Letter: "c", Points: 8, Text: "Cannot plan the route of a journey."},
		"d": {Letter: "d", Points: 10, Text: "Cannot follow the route of an unfamiliar journey without another person, assistance dog or orientation aid."},
		"e": {Letter: "e", Points: 10, Text: "Cannot undertake any journey because it would cause overwhelming psychological distress to the claimant."},
		"f": {Letter: "f", Points: 12, Text: "Cannot follow the route of a familiar journey without another person, an assistance dog or an orientation aid."},
	},
	"movingAround": {
		"a": {Letter: "a", Points: 0, Text: "Can stand and then move more than 200 metres, either aided or unaided."},
		"b": {Letter: "b", Points: 4, Text: "Can stand and then move more than 50 metres but no more than 200 metres, either aided or unaided."},
		"c": {Letter: "c", Points: 8, Text: "Can stand and then move unaided more than 20 metres but no more than 50 metres."},
		"d": {Letter: "d", Points: 10, Text: "Can stand and then move using an aid or appliance more than 20 metres but no more than 50 metres."},
		"e": {Letter: "e", Points: 12, Text: "Can stand and then move more than 1 metre but no more than 20 metres, either aided or unaided."},
		"f": {Letter: "f", Points: 12, Text: "Cannot, either aided or unaided, stand or move more than 1 metre."},
	},
}

var questionService = decision.NewQuestionService(catalog, descriptors)

// Questions returns the PIP question service used to score recorded answers.
func Questions() *decision.QuestionService {
	return questionService
}
