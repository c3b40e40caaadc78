// internal/decision/esa/descriptors.go
package esa

import "tribunal-workers/internal/decision"

func scored(points map[string]int, texts map[string]string) map[string]decision.Descriptor {
	out := make(map[string]decision.Descriptor, len(points))
	for letter, p := range points {
		out[letter] = decision.Descriptor{Letter: letter, Points: p, Text: texts[letter]}
	}
	return out
}

// The ESA schedule 2 descriptor scoring table. Most activities score
// 15/9/6/0 across their descriptors; continence and consciousness score
// 15/6/0. Point values are transcribed from the schedule.
var descriptors = decision.DescriptorTable{
	"mobilisingUnaided": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot unaided mobilise more than 50 metres on level ground without stopping or without significant discomfort.",
			"b": "Cannot unaided mobilise more than 100 metres on level ground without stopping or without significant discomfort.",
			"c": "Cannot unaided mobilise more than 200 metres on level ground without stopping or without significant discomfort.",
			"d": "None of the above applies.",
		}),
	"standingAndSitting": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot move between one seated position and another located next to one another without receiving physical assistance from another person.",
			"b": "Cannot, for the majority of the time, remain at a work station for more than 30 minutes before needing to move away.",
			"c": "Cannot, for the majority of the time, remain at a work station for more than an hour before needing to move away.",
			"d": "None of the above applies.",
		}),
	"reaching": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot raise either arm as if to put something in the top pocket of a coat or jacket.",
			"b": "Cannot raise either arm to top of head as if to put on a hat.",
			"c": "Cannot raise either arm above head height as if to reach for something.",
			"d": "None of the above applies.",
		}),
	"pickingUp": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot pick up and move a 0.5 litre carton full of liquid.",
			"b": "Cannot pick up and move a one litre carton full of liquid.",
			"c": "Cannot transfer a light but bulky object such as an empty cardboard box.",
			"d": "None of the above applies.",
		}),
	"manualDexterity": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot press a button or turn the pages of a book with either hand.",
			"b": "Cannot pick up a one pound coin or equivalent with either hand.",
			"c": "Cannot use a pen or pencil to make a meaningful mark with either hand.",
			"d": "None of the above applies.",
		}),
	"makingSelfUnderstood": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot convey a simple message, such as the presence of a hazard.",
			"b": "Has significant difficulty conveying a simple message to strangers.",
			"c": "Has some difficulty conveying a simple message to strangers.",
			"d": "None of the above applies.",
		}),
	"communication": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot understand a simple message, such as the location of a fire escape, due to sensory impairment.",
			"b": "Has significant difficulty understanding a simple message from a stranger due to sensory impairment.",
			"c": "Has some difficulty understanding a simple message from a stranger due to sensory impairment.",
			"d": "None of the above applies.",
		}),
	"navigation": scored(
		map[string]int{"a": 15, "b": 9, "c": 0},
		map[string]string{
			"a": "Unable to navigate around familiar surroundings without being accompanied by another person, due to sensory impairment.",
			"b": "Unable to navigate around unfamiliar surroundings without being accompanied by another person, due to sensory impairment.",
			"c": "None of the above applies.",
		}),
	"lossOfControl": scored(
		map[string]int{"a": 15, "b": 6, "c": 0},
		map[string]string{
			"a": "At least once a month experiences loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder sufficient to require cleaning and a change in clothing.",
			"b": "At risk of loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder sufficient to require cleaning and a change in clothing, if not able to reach a toilet quickly.",
			"c": "None of the above applies.",
		}),
	"consciousness": scored(
		map[string]int{"a": 15, "b": 6, "c": 0},
		map[string]string{
			"a": "At least once a week, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration.",
			"b": "At least once a month, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration.",
			"c": "None of the above applies.",
		}),
	"learningTasks": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot learn how to complete a simple task, such as setting an alarm clock.",
			"b": "Cannot learn anything beyond a simple task, such as setting an alarm clock.",
			"c": "Cannot learn anything beyond a moderately complex task, such as the steps involved in operating a washing machine to clean clothes.",
			"d": "None of the above applies.",
		}),
	"awarenessOfHazards": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Reduced awareness of everyday hazards leads to a significant risk of injury to self or others or damage to property or possessions such that the claimant requires supervision for the majority of the time to maintain safety.",
			"b": "Reduced awareness of everyday hazards leads to a significant risk such that the claimant frequently requires supervision to maintain safety.",
			"c": "Reduced awareness of everyday hazards leads to a significant risk such that the claimant occasionally requires supervision to maintain safety.",
			"d": "None of the above applies.",
		}),
	"personalAction": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot, due to impaired mental function, reliably initiate or complete at least two sequential personal actions.",
			"b": "Cannot, due to impaired mental function, reliably initiate or complete at least two sequential personal actions for the majority of the time.",
			"c": "Frequently cannot, due to impaired mental function, reliably initiate or complete at least two sequential personal actions.",
			"d": "None of the above applies.",
		}),
	"copingWithChange": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot cope with any change to the extent that day to day life cannot be managed.",
			"b": "Cannot cope with minor planned change, to the extent that overall day to day life is made significantly more difficult.",
			"c": "Cannot cope with minor unplanned change, to the extent that overall day to day life is made significantly more difficult.",
			"d": "None of the above applies.",
		}),
	"gettingAbout": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Cannot get to any place outside the claimant's home with which the claimant is familiar.",
			"b": "Is unable to get to a specified place with which the claimant is familiar, without being accompanied by another person.",
			"c": "Is unable to get to a specified place with which the claimant is unfamiliar without being accompanied by another person.",
			"d": "None of the above applies.",
		}),
	"socialEngagement": scored(
		map[string]int{"a": 15, "b": 9, "c": 6, "d": 0},
		map[string]string{
			"a": "Engagement in social contact is always precluded due to difficulty relating to others or significant distress experienced by the claimant.",
			"b": "Engagement in social contact with someone unfamiliar to the claimant is always precluded due to difficulty relating to others or significant distress experienced by the claimant.",
			"c": "Engagement in social contact with someone unfamiliar to the claimant is not possible for the majority of the time due to difficulty relating to others or significant distress experienced by the claimant.",
			"d": "None of the above applies.",
		}),
	"appropriatenessOfBehaviour": scored(
		map[string]int{"a": 15, "b": 15, "c": 9, "d": 6, "e": 0},
		map[string]string{
			"a": "Has, on a daily basis, uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace.",
			"b": "Frequently has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace.",
			"c": "Occasionally has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace.",
			"d": "Has a strong urge to behave in ways that would be unreasonable in any workplace but is able to control the behaviour for the majority of the time.",
			"e": "None of the above applies.",
		}),
}

var questionService = decision.NewQuestionService(catalog, descriptors)

// Questions returns the ESA question service used to score recorded answers.
func Questions() *decision.QuestionService {
	return questionService
}
