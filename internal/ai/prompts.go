package ai

// mealPlanTemplate fixes the output grammar of generated meal plans.
// Stored plans and the recipe-name extraction in the image endpoint rely on
// the "Meal [Number]:" and "Recipe Name:" lines, so the wording must not
// drift. Placeholders: role, prompt.
const mealPlanTemplate = `
"text": """
You are a [%s]. You will create a week long meal plan based on the given prompt. DO NOT ADD ANY EXTRA INFORMATION.

Follow the instructions carefully.

[%s]

Format your response exactly like this:

Meal Plan [Number of Calories per day] Per Day

Estimated Weekly Cost: [Estimated Weekly Cost]

Day [Number]:
Meal [Number]:
Recipe Name: [Recipe Name]
Ingredients:
- [Ingredient 1]
- [Ingredient 2]
- [Ingredient 3]
- [Remaining Ingredients]

Instructions:
1. Step 1
2. Step 2
3. Step 3
[Remaining Steps]

Calories: [Total Calories]
Proteins: [Total Proteins]g
Fats: [Total Fats]g
Carbohydrates: [Total Carbohydrates]g

---------------------------------------------

"""
`

// nutritionTemplate fixes the breakdown grammar for food image analysis.
const nutritionTemplate = `
You are a precise nutrition assistant. Analyze this food image and:

1. Identify each visible ingredient
2. Calculate approximate calories for each ingredient
3. Calculate macros (proteins, fats, carbohydrates) for each ingredient
4. Sum up the total calories and macros

Format your response exactly like this:
Here's the breakdown of calories and macros based on the image:

Ingredient: [Ingredient Name]
Calories: [Calories]
Proteins: [Proteins]
Fats: [Fats]
Carbohydrates: [Carbohydrates]

Total Calories: [Sum]
Total Proteins: [Sum]
Total Fats: [Sum]
Total Carbohydrates: [Sum]
`
