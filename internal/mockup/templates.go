package mockup

import "html/template"

const loginTemplate = `<div class="bg-white w-full max-w-md rounded-2xl shadow-xl p-8">
    <div class="flex items-center justify-center w-14 h-14 mx-auto mb-6 rounded-full bg-{{.Color}}-100 text-{{.Color}}-600">
        <i class="fa-solid fa-lock text-xl"></i>
    </div>
    <h2 class="text-2xl font-bold text-center text-gray-800 mb-2">Welcome back</h2>
    <p class="text-center text-gray-500 mb-8">Sign in to continue</p>
    <form class="space-y-5">
        <div>
            <label for="email" class="block text-sm font-semibold text-gray-700 mb-1">Email</label>
            <input id="email" name="email" type="email" placeholder="you@example.com"
                class="w-full px-4 py-2 border border-gray-300 rounded-lg focus:outline-none focus:ring-2 focus:ring-{{.Color}}-500">
        </div>
        <div>
            <label for="password" class="block text-sm font-semibold text-gray-700 mb-1">Password</label>
            <input id="password" name="password" type="password" placeholder="••••••••"
                class="w-full px-4 py-2 border border-gray-300 rounded-lg focus:outline-none focus:ring-2 focus:ring-{{.Color}}-500">
        </div>
        <div class="flex items-center justify-between text-sm">
            <label class="flex items-center gap-2 text-gray-600"><input type="checkbox" class="accent-{{.Color}}-600"> Remember me</label>
            <a href="#" class="text-{{.Color}}-600 font-semibold">Forgot password?</a>
        </div>
        <button type="submit" class="w-full py-2 rounded-lg font-semibold text-white bg-{{.Color}}-600 hover:bg-{{.Color}}-700">Sign in</button>
    </form>
    <p class="text-xs text-gray-400 text-center mt-6">Prompt: &ldquo;{{.Prompt}}&rdquo;</p>
</div>`

const dashboardTemplate = `<div class="w-full max-w-5xl bg-white rounded-2xl shadow-xl overflow-hidden flex">
    <aside class="w-56 bg-{{.Color}}-700 text-white p-6 space-y-4">
        <h2 class="text-xl font-bold mb-6"><i class="fa-solid fa-chart-line mr-2"></i>Analytics</h2>
        <a href="#" class="block font-semibold"><i class="fa-solid fa-house mr-2"></i>Overview</a>
        <a href="#" class="block text-{{.Color}}-100"><i class="fa-solid fa-users mr-2"></i>Customers</a>
        <a href="#" class="block text-{{.Color}}-100"><i class="fa-solid fa-gear mr-2"></i>Settings</a>
    </aside>
    <main class="flex-1 p-8">
        <h1 class="text-2xl font-bold text-gray-800 mb-6">Dashboard</h1>
        <div class="grid grid-cols-3 gap-4 mb-8">
            <div class="p-5 rounded-xl bg-{{.Color}}-50 border border-{{.Color}}-100">
                <p class="text-sm text-gray-500">Revenue</p>
                <p class="text-2xl font-bold text-{{.Color}}-700">$48,210</p>
            </div>
            <div class="p-5 rounded-xl bg-{{.Color}}-50 border border-{{.Color}}-100">
                <p class="text-sm text-gray-500">Active users</p>
                <p class="text-2xl font-bold text-{{.Color}}-700">2,931</p>
            </div>
            <div class="p-5 rounded-xl bg-{{.Color}}-50 border border-{{.Color}}-100">
                <p class="text-sm text-gray-500">Conversion</p>
                <p class="text-2xl font-bold text-{{.Color}}-700">4.7%</p>
            </div>
        </div>
        <div class="h-48 rounded-xl bg-gray-50 border border-dashed border-gray-300 flex items-end gap-3 p-4">
            <div class="flex-1 h-1/3 rounded bg-{{.Color}}-300"></div>
            <div class="flex-1 h-2/3 rounded bg-{{.Color}}-400"></div>
            <div class="flex-1 h-1/2 rounded bg-{{.Color}}-500"></div>
            <div class="flex-1 h-full rounded bg-{{.Color}}-600"></div>
        </div>
        <p class="text-xs text-gray-400 mt-6">Prompt: &ldquo;{{.Prompt}}&rdquo;</p>
    </main>
</div>`

const profileTemplate = `<div class="bg-white w-full max-w-sm rounded-2xl shadow-xl overflow-hidden">
    <div class="h-28 bg-{{.Color}}-500"></div>
    <div class="px-6 pb-6 -mt-12 text-center">
        <img src="https://source.unsplash.com/random/400x300" alt="Avatar"
            class="w-24 h-24 mx-auto rounded-full border-4 border-white object-cover">
        <h2 class="mt-3 text-xl font-bold text-gray-800">Jordan Lee</h2>
        <p class="text-gray-500">Product Designer</p>
        <div class="flex justify-center gap-4 my-4 text-{{.Color}}-600">
            <i class="fa-brands fa-github"></i>
            <i class="fa-brands fa-linkedin"></i>
            <i class="fa-brands fa-x-twitter"></i>
        </div>
        <div class="flex gap-3">
            <button class="flex-1 py-2 rounded-lg font-semibold text-white bg-{{.Color}}-600">Follow</button>
            <button class="flex-1 py-2 rounded-lg font-semibold text-{{.Color}}-600 border border-{{.Color}}-600">Message</button>
        </div>
        <p class="text-xs text-gray-400 mt-6">Prompt: &ldquo;{{.Prompt}}&rdquo;</p>
    </div>
</div>`

const genericTemplate = `<div class="bg-white w-full max-w-lg rounded-2xl shadow-xl p-8 border-t-4 border-{{.Color}}-500">
    <h2 class="text-2xl font-bold text-{{.Color}}-600 mb-4"><i class="fa-solid fa-wand-magic-sparkles mr-2"></i>Generic Component</h2>
    <p class="text-gray-600 mb-6">No specific component matched, so here is a starting point for:</p>
    <blockquote class="p-4 rounded-lg bg-{{.Color}}-50 text-gray-800 italic">&ldquo;{{.Prompt}}&rdquo;</blockquote>
    <button class="mt-6 px-5 py-2 rounded-lg font-semibold text-white bg-{{.Color}}-600">Get started</button>
</div>`

var categoryTemplates = map[Category]*template.Template{
	CategoryLogin:     template.Must(template.New("login").Parse(loginTemplate)),
	CategoryDashboard: template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	CategoryProfile:   template.Must(template.New("profile").Parse(profileTemplate)),
	CategoryGeneric:   template.Must(template.New("generic").Parse(genericTemplate)),
}
